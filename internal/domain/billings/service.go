package billings

import (
	"context"
	"strings"
	"time"

	"vet-clinic/internal/platform/validation"

	"github.com/shopspring/decimal"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	PetID       *int64           `json:"pet_id" validate:"required"`
	Date        *time.Time       `json:"date"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Description string           `json:"description" validate:"required"`
	Paid        bool             `json:"paid"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Billing, error) {
	in.Description = strings.TrimSpace(in.Description)

	if err := validation.Struct(in); err != nil {
		return Billing{}, err
	}

	return s.repo.Create(ctx, Billing{
		PetID:       *in.PetID,
		Date:        in.Date,
		Amount:      in.Amount.Round(2),
		Description: in.Description,
		Paid:        in.Paid,
	})
}

func (s *Service) List(ctx context.Context) ([]Billing, error) {
	return s.repo.List(ctx)
}

// SetPaid con paid nil devuelve la factura sin tocarla.
func (s *Service) SetPaid(ctx context.Context, id int64, paid *bool) (Billing, error) {
	if paid == nil {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.SetPaid(ctx, id, *paid)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
