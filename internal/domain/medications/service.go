package medications

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string
	Dosage      string
	Frequency   string
	TreatmentID *int64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Medication, error) {
	return s.repo.Create(ctx, Medication{
		Name:        strings.TrimSpace(in.Name),
		Dosage:      strings.TrimSpace(in.Dosage),
		Frequency:   strings.TrimSpace(in.Frequency),
		TreatmentID: in.TreatmentID,
	})
}

func (s *Service) List(ctx context.Context) ([]Medication, error) {
	return s.repo.List(ctx)
}
