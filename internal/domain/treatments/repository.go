package treatments

import "context"

type Repository interface {
	Create(ctx context.Context, t Treatment) (Treatment, error)

	// List devuelve cada tratamiento con sus medicaciones y mascotas.
	List(ctx context.Context) ([]Treatment, error)
}
