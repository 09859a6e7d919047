package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO appointments (date, reason, pet_id, staff_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, a.Date, a.Reason, a.PetID, a.StaffID).Scan(&a.ID)
	if err != nil {
		return appointments.Appointment{}, mapError(err, "Appointment")
	}
	return a, nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, reason, pet_id, staff_id
		FROM appointments
		ORDER BY id
	`)
	if err != nil {
		return nil, mapError(err, "Appointment")
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		var (
			a              appointments.Appointment
			date           sql.NullTime
			petID, staffID sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &date, &a.Reason, &petID, &staffID); err != nil {
			return nil, mapError(err, "Appointment")
		}
		a.Date = nullTime(date)
		a.PetID = nullInt(petID)
		a.StaffID = nullInt(staffID)
		out = append(out, a)
	}
	return out, mapError(rows.Err(), "Appointment")
}
