package owners

import "context"

type Repository interface {
	Create(ctx context.Context, o Owner) (Owner, error)
	List(ctx context.Context) ([]Owner, error)
	GetByID(ctx context.Context, id int64) (Owner, error)

	// Delete borra también sus mascotas (y lo que cuelga de ellas).
	Delete(ctx context.Context, id int64) error
}
