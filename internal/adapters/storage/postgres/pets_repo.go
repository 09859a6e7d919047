package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"vet-clinic/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `id, owner_id, name, species, breed, sex, color, dob, medical_notes`

// Create inserta la mascota y sus pet_treatments en la misma tx.
func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO pets (owner_id, name, species, breed, sex, color, dob, medical_notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`,
			p.OwnerID,
			p.Name,
			p.Species,
			p.Breed,
			p.Sex,
			p.Color,
			p.DOB,
			p.MedicalNotes,
		).Scan(&p.ID)
		if err != nil {
			return mapError(err, "Pet")
		}

		return insertLinks(ctx, tx, p.ID, p.Treatments)
	})
	if err != nil {
		return pets.Pet{}, err
	}

	return r.GetByID(ctx, p.ID)
}

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	var (
		where []string
		args  []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		where = append(where, col+" = $"+strconv.Itoa(len(args)))
	}
	if filter.Species != "" {
		add("species", filter.Species)
	}
	if filter.Breed != "" {
		add("breed", filter.Breed)
	}
	if filter.Sex != "" {
		add("sex", filter.Sex)
	}
	if filter.OwnerID != nil {
		add("owner_id", *filter.OwnerID)
	}

	q := `SELECT ` + petColumns + ` FROM pets`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapError(err, "Pet")
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, mapError(err, "Pet")
		}
		out = append(out, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "Pet")
	}

	links, err := r.loadLinks(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Treatments = links[out[i].ID]
		if out[i].Treatments == nil {
			out[i].Treatments = make([]pets.TreatmentLink, 0)
		}
	}
	return out, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, mapError(err, "Pet")
	}

	links, err := r.loadLinks(ctx, []int64{id})
	if err != nil {
		return pets.Pet{}, err
	}
	p.Treatments = links[id]
	if p.Treatments == nil {
		p.Treatments = make([]pets.TreatmentLink, 0)
	}
	return p, nil
}

// Update guarda la mascota y, con replaceTreatments, borra e inserta
// de nuevo todas sus filas pet_treatments. Todo en una tx.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet, replaceTreatments bool) (pets.Pet, error) {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE pets
			SET
				owner_id = $2,
				name = $3,
				species = $4,
				breed = $5,
				sex = $6,
				color = $7,
				dob = $8,
				medical_notes = $9
			WHERE id = $1
		`,
			p.ID,
			p.OwnerID,
			p.Name,
			p.Species,
			p.Breed,
			p.Sex,
			p.Color,
			p.DOB,
			p.MedicalNotes,
		)
		if err != nil {
			return mapError(err, "Pet")
		}
		if err := requireAffected(res, "Pet"); err != nil {
			return err
		}

		if !replaceTreatments {
			return nil
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM pet_treatments WHERE pet_id = $1`, p.ID); err != nil {
			return mapError(err, "Pet")
		}
		return insertLinks(ctx, tx, p.ID, p.Treatments)
	})
	if err != nil {
		return pets.Pet{}, err
	}

	return r.GetByID(ctx, p.ID)
}

// Delete: appointments, billings y pet_treatments caen por cascada.
func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "Pet")
	}
	return requireAffected(res, "Pet")
}

func insertLinks(ctx context.Context, tx *sql.Tx, petID int64, links []pets.TreatmentLink) error {
	for _, l := range links {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO pet_treatments (pet_id, treatment_id, treatment_date, notes)
			VALUES ($1, $2, $3, $4)
		`, petID, l.TreatmentID, l.TreatmentDate, l.Notes)
		if err != nil {
			return mapError(err, "Pet")
		}
	}
	return nil
}

// loadLinks trae las filas pet_treatments de varias mascotas en una query.
func (r *PetsRepo) loadLinks(ctx context.Context, petIDs []int64) (map[int64][]pets.TreatmentLink, error) {
	out := make(map[int64][]pets.TreatmentLink, len(petIDs))
	if len(petIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT pt.pet_id, pt.treatment_id, t.description, pt.treatment_date, pt.notes
		FROM pet_treatments pt
		JOIN treatments t ON t.id = pt.treatment_id
		WHERE pt.pet_id = ANY($1)
		ORDER BY pt.seq
	`, petIDs)
	if err != nil {
		return nil, mapError(err, "Pet")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			petID int64
			l     pets.TreatmentLink
		)
		if err := rows.Scan(&petID, &l.TreatmentID, &l.Description, &l.TreatmentDate, &l.Notes); err != nil {
			return nil, mapError(err, "Pet")
		}
		l.TreatmentDate = l.TreatmentDate.UTC()
		out[petID] = append(out[petID], l)
	}
	return out, mapError(rows.Err(), "Pet")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var (
		p   pets.Pet
		dob sql.NullTime
	)
	err := s.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Sex,
		&p.Color,
		&dob,
		&p.MedicalNotes,
	)
	if err != nil {
		return pets.Pet{}, err
	}
	p.DOB = nullTime(dob)
	return p, nil
}
