package billings

import "context"

type Repository interface {
	Create(ctx context.Context, b Billing) (Billing, error)
	List(ctx context.Context) ([]Billing, error)
	GetByID(ctx context.Context, id int64) (Billing, error)

	// SetPaid cambia solo la columna paid.
	SetPaid(ctx context.Context, id int64, paid bool) (Billing, error)
	Delete(ctx context.Context, id int64) error
}
