package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) (medications.Medication, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO medications (name, dosage, frequency, treatment_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, m.Name, m.Dosage, m.Frequency, m.TreatmentID).Scan(&m.ID)
	if err != nil {
		return medications.Medication{}, mapError(err, "Medication")
	}
	return m, nil
}

func (r *MedicationsRepo) List(ctx context.Context) ([]medications.Medication, error) {
	return queryMedications(ctx, r.db, `
		SELECT id, name, dosage, frequency, treatment_id
		FROM medications
		ORDER BY id
	`)
}

func queryMedications(ctx context.Context, db *sql.DB, q string, args ...any) ([]medications.Medication, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapError(err, "Medication")
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		var (
			m           medications.Medication
			treatmentID sql.NullInt64
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Dosage, &m.Frequency, &treatmentID); err != nil {
			return nil, mapError(err, "Medication")
		}
		m.TreatmentID = nullInt(treatmentID)
		out = append(out, m)
	}
	return out, mapError(rows.Err(), "Medication")
}
