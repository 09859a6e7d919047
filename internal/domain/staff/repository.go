package staff

import "context"

// Delete en el store borra en cascada appointments y treatments del miembro.
type Repository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	List(ctx context.Context) ([]Staff, error)
	GetByID(ctx context.Context, id int64) (Staff, error)
	Update(ctx context.Context, s Staff) error
	Delete(ctx context.Context, id int64) error
}
