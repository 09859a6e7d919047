package staff

import (
	"context"
	"strings"

	"vet-clinic/internal/platform/apperr"
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
	Role  string `json:"role" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Staff, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Role = strings.TrimSpace(in.Role)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if err := validation.Struct(in); err != nil {
		return Staff{}, err
	}

	return s.repo.Create(ctx, Staff{
		Name:  in.Name,
		Role:  in.Role,
		Email: in.Email,
		Phone: in.Phone,
	})
}

func (s *Service) List(ctx context.Context) ([]Staff, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Staff, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name  *string
	Role  *string
	Email *string
	Phone *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Staff, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Staff{}, err
	}

	fields := []struct {
		name string
		src  *string
		dst  *string
	}{
		{"name", in.Name, &current.Name},
		{"role", in.Role, &current.Role},
		{"email", in.Email, &current.Email},
		{"phone", in.Phone, &current.Phone},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		v := strings.TrimSpace(*f.src)
		if v == "" {
			return Staff{}, apperr.Validationf("%s must not be empty", f.name)
		}
		*f.dst = v
	}

	if err := s.repo.Update(ctx, current); err != nil {
		return Staff{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
