package memory

import (
	"context"

	"vet-clinic/internal/domain/appointments"
)

type appointmentRepo struct {
	s *Store
}

func NewAppointmentRepo(s *Store) appointments.Repository {
	return &appointmentRepo{s: s}
}

func (r *appointmentRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkOptionalRef(a.PetID, "Pet", r.s.hasPet); err != nil {
		return appointments.Appointment{}, err
	}
	if err := r.s.checkOptionalRef(a.StaffID, "Staff", r.s.hasStaff); err != nil {
		return appointments.Appointment{}, err
	}

	a.ID = r.s.nextID("appointments")
	r.s.appointments[a.ID] = a
	return a, nil
}

func (r *appointmentRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.Appointment, 0, len(r.s.appointments))
	for _, id := range sortedIDs(r.s.appointments) {
		out = append(out, r.s.appointments[id])
	}
	return out, nil
}
