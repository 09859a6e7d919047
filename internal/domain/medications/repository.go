package medications

import "context"

type Repository interface {
	Create(ctx context.Context, m Medication) (Medication, error)
	List(ctx context.Context) ([]Medication, error)
}
