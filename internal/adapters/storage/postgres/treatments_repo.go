package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/medications"
	"vet-clinic/internal/domain/treatments"
)

type TreatmentsRepo struct {
	db *sql.DB
}

func NewTreatmentsRepo(db *sql.DB) *TreatmentsRepo {
	return &TreatmentsRepo{db: db}
}

func (r *TreatmentsRepo) Create(ctx context.Context, t treatments.Treatment) (treatments.Treatment, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO treatments (date, description, staff_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, t.Date, t.Description, t.StaffID).Scan(&t.ID)
	if err != nil {
		return treatments.Treatment{}, mapError(err, "Treatment")
	}

	t.Medications = make([]medications.Medication, 0)
	t.Pets = make([]treatments.PetRef, 0)
	return t, nil
}

// List arma cada tratamiento con medicaciones y mascotas (3 queries, sin N+1).
func (r *TreatmentsRepo) List(ctx context.Context) ([]treatments.Treatment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, description, staff_id
		FROM treatments
		ORDER BY id
	`)
	if err != nil {
		return nil, mapError(err, "Treatment")
	}
	defer rows.Close()

	out := make([]treatments.Treatment, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var (
			t       treatments.Treatment
			date    sql.NullTime
			staffID sql.NullInt64
		)
		if err := rows.Scan(&t.ID, &date, &t.Description, &staffID); err != nil {
			return nil, mapError(err, "Treatment")
		}
		t.Date = nullTime(date)
		t.StaffID = nullInt(staffID)
		out = append(out, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "Treatment")
	}
	if len(ids) == 0 {
		return out, nil
	}

	meds, err := queryMedications(ctx, r.db, `
		SELECT id, name, dosage, frequency, treatment_id
		FROM medications
		WHERE treatment_id = ANY($1)
		ORDER BY id
	`, ids)
	if err != nil {
		return nil, err
	}
	medsBy := make(map[int64][]medications.Medication)
	for _, m := range meds {
		medsBy[*m.TreatmentID] = append(medsBy[*m.TreatmentID], m)
	}

	petsBy, err := r.loadPets(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range out {
		out[i].Medications = medsBy[out[i].ID]
		if out[i].Medications == nil {
			out[i].Medications = make([]medications.Medication, 0)
		}
		out[i].Pets = petsBy[out[i].ID]
		if out[i].Pets == nil {
			out[i].Pets = make([]treatments.PetRef, 0)
		}
	}
	return out, nil
}

func (r *TreatmentsRepo) loadPets(ctx context.Context, treatmentIDs []int64) (map[int64][]treatments.PetRef, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT pt.treatment_id, p.id, p.name
		FROM pet_treatments pt
		JOIN pets p ON p.id = pt.pet_id
		WHERE pt.treatment_id = ANY($1)
		ORDER BY pt.seq
	`, treatmentIDs)
	if err != nil {
		return nil, mapError(err, "Treatment")
	}
	defer rows.Close()

	out := make(map[int64][]treatments.PetRef)
	for rows.Next() {
		var (
			tid int64
			p   treatments.PetRef
		)
		if err := rows.Scan(&tid, &p.ID, &p.Name); err != nil {
			return nil, mapError(err, "Treatment")
		}
		out[tid] = append(out[tid], p)
	}
	return out, mapError(rows.Err(), "Treatment")
}
