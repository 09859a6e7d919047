package memory

import (
	"context"

	"vet-clinic/internal/domain/medications"
)

type medicationRepo struct {
	s *Store
}

func NewMedicationRepo(s *Store) medications.Repository {
	return &medicationRepo{s: s}
}

func (r *medicationRepo) Create(ctx context.Context, m medications.Medication) (medications.Medication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkOptionalRef(m.TreatmentID, "Treatment", r.s.hasTreatment); err != nil {
		return medications.Medication{}, err
	}

	m.ID = r.s.nextID("medications")
	r.s.medications[m.ID] = m
	return m, nil
}

func (r *medicationRepo) List(ctx context.Context) ([]medications.Medication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]medications.Medication, 0, len(r.s.medications))
	for _, id := range sortedIDs(r.s.medications) {
		out = append(out, r.s.medications[id])
	}
	return out, nil
}
