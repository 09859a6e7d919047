package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/staff"
	"vet-clinic/internal/platform/apperr"
)

type StaffRepo struct {
	db *sql.DB
}

func NewStaffRepo(db *sql.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

func (r *StaffRepo) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO staff (name, role, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, s.Name, s.Role, s.Email, s.Phone).Scan(&s.ID)
	if err != nil {
		return staff.Staff{}, mapError(err, "Staff")
	}
	return s, nil
}

func (r *StaffRepo) List(ctx context.Context) ([]staff.Staff, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, role, email, phone
		FROM staff
		ORDER BY id
	`)
	if err != nil {
		return nil, mapError(err, "Staff")
	}
	defer rows.Close()

	out := make([]staff.Staff, 0)
	for rows.Next() {
		var s staff.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.Email, &s.Phone); err != nil {
			return nil, mapError(err, "Staff")
		}
		out = append(out, s)
	}
	return out, mapError(rows.Err(), "Staff")
}

func (r *StaffRepo) GetByID(ctx context.Context, id int64) (staff.Staff, error) {
	var s staff.Staff
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, role, email, phone
		FROM staff
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.Role, &s.Email, &s.Phone)
	if err != nil {
		return staff.Staff{}, mapError(err, "Staff")
	}
	return s, nil
}

func (r *StaffRepo) Update(ctx context.Context, s staff.Staff) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE staff
		SET name = $2, role = $3, email = $4, phone = $5
		WHERE id = $1
	`, s.ID, s.Name, s.Role, s.Email, s.Phone)
	if err != nil {
		return mapError(err, "Staff")
	}
	return requireAffected(res, "Staff")
}

// Delete: appointments y treatments caen por ON DELETE CASCADE.
func (r *StaffRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "Staff")
	}
	return requireAffected(res, "Staff")
}

func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, entity)
	}
	if n == 0 {
		return apperr.NotFound(entity)
	}
	return nil
}
