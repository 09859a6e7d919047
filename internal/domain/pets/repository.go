package pets

import "context"

type Repository interface {
	// Create inserta la mascota y p.Treatments en una sola transacción.
	Create(ctx context.Context, p Pet) (Pet, error)
	List(ctx context.Context, filter ListFilter) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)

	// Update guarda los campos de p. Con replaceTreatments, p.Treatments
	// reemplaza el set completo (delete-all + insert), todo en la misma tx.
	Update(ctx context.Context, p Pet, replaceTreatments bool) (Pet, error)

	// Delete borra en cascada appointments, billings y pet_treatments.
	Delete(ctx context.Context, id int64) error
}
