package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO owners (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id
	`, o.Name, o.Email, o.Phone).Scan(&o.ID)
	if err != nil {
		return owners.Owner{}, mapError(err, "Owner")
	}
	return o, nil
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, phone FROM owners ORDER BY id`)
	if err != nil {
		return nil, mapError(err, "Owner")
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.Phone); err != nil {
			return nil, mapError(err, "Owner")
		}
		out = append(out, o)
	}
	return out, mapError(rows.Err(), "Owner")
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	var o owners.Owner
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone FROM owners WHERE id = $1
	`, id).Scan(&o.ID, &o.Name, &o.Email, &o.Phone)
	if err != nil {
		return owners.Owner{}, mapError(err, "Owner")
	}
	return o, nil
}

// Delete: las mascotas (y todo lo que cuelga) caen por cascada.
func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "Owner")
	}
	return requireAffected(res, "Owner")
}
