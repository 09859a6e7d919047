package appointments

import "context"

type Repository interface {
	// Create falla con error de validación si pet_id o staff_id no existen.
	Create(ctx context.Context, a Appointment) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
}
