package appointments

import "time"

// Appointment es un turno. Mascota y profesional son opcionales,
// pero si vienen tienen que existir.
type Appointment struct {
	ID      int64
	Date    *time.Time
	Reason  string
	PetID   *int64
	StaffID *int64
}
