package treatments

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

type CreateInput struct {
	Date        *time.Time
	Description string
	StaffID     *int64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Treatment, error) {
	return s.repo.Create(ctx, Treatment{
		Date:        in.Date,
		Description: strings.TrimSpace(in.Description),
		StaffID:     in.StaffID,
	})
}

func (s *Service) List(ctx context.Context) ([]Treatment, error) {
	return s.repo.List(ctx)
}
