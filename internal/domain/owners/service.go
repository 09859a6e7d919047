package owners

import (
	"context"
	"strings"

	"vet-clinic/internal/platform/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if err := validation.Struct(in); err != nil {
		return Owner{}, err
	}

	return s.repo.Create(ctx, Owner{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	})
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete no tiene ruta HTTP; la API pública no expone bajas de owners.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
