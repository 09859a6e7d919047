package appointments

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput: todo opcional. Las FKs las valida el store.
type CreateInput struct {
	Date    *time.Time
	Reason  string
	PetID   *int64
	StaffID *int64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	return s.repo.Create(ctx, Appointment{
		Date:    in.Date,
		Reason:  strings.TrimSpace(in.Reason),
		PetID:   in.PetID,
		StaffID: in.StaffID,
	})
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}
