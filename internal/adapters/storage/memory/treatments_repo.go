package memory

import (
	"context"

	"vet-clinic/internal/domain/medications"
	"vet-clinic/internal/domain/treatments"
)

type treatmentRepo struct {
	s *Store
}

func NewTreatmentRepo(s *Store) treatments.Repository {
	return &treatmentRepo{s: s}
}

func (r *treatmentRepo) Create(ctx context.Context, t treatments.Treatment) (treatments.Treatment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkOptionalRef(t.StaffID, "Staff", r.s.hasStaff); err != nil {
		return treatments.Treatment{}, err
	}

	t.ID = r.s.nextID("treatments")
	t.Medications = nil
	t.Pets = nil
	r.s.treatments[t.ID] = t

	return r.s.loadTreatment(t.ID), nil
}

func (r *treatmentRepo) List(ctx context.Context) ([]treatments.Treatment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]treatments.Treatment, 0, len(r.s.treatments))
	for _, id := range sortedIDs(r.s.treatments) {
		out = append(out, r.s.loadTreatment(id))
	}
	return out, nil
}

func (s *Store) loadTreatment(id int64) treatments.Treatment {
	t := s.treatments[id]

	t.Medications = make([]medications.Medication, 0)
	for _, mid := range sortedIDs(s.medications) {
		m := s.medications[mid]
		if m.TreatmentID != nil && *m.TreatmentID == id {
			t.Medications = append(t.Medications, m)
		}
	}

	t.Pets = make([]treatments.PetRef, 0)
	for _, pt := range s.petTreatments {
		if pt.treatmentID == id {
			t.Pets = append(t.Pets, treatments.PetRef{ID: pt.petID, Name: s.pets[pt.petID].Name})
		}
	}
	return t
}
