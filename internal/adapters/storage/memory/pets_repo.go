package memory

import (
	"context"
	"slices"

	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/platform/apperr"
)

type petRepo struct {
	s *Store
}

func NewPetRepo(s *Store) pets.Repository {
	return &petRepo{s: s}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(p); err != nil {
		return pets.Pet{}, err
	}

	p.ID = r.s.nextID("pets")
	r.s.pets[p.ID] = stripLinks(p)
	r.s.insertLinks(p.ID, p.Treatments)

	return r.s.loadPet(p.ID), nil
}

func (r *petRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, id := range sortedIDs(r.s.pets) {
		p := r.s.pets[id]
		if filter.Species != "" && p.Species != filter.Species {
			continue
		}
		if filter.Breed != "" && p.Breed != filter.Breed {
			continue
		}
		if filter.Sex != "" && p.Sex != filter.Sex {
			continue
		}
		if filter.OwnerID != nil && p.OwnerID != *filter.OwnerID {
			continue
		}
		out = append(out, r.s.loadPet(id))
	}
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if !r.s.hasPet(id) {
		return pets.Pet{}, apperr.NotFound("Pet")
	}
	return r.s.loadPet(id), nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet, replaceTreatments bool) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.hasPet(p.ID) {
		return pets.Pet{}, apperr.NotFound("Pet")
	}
	if !r.s.hasOwner(p.OwnerID) {
		return pets.Pet{}, missing("Owner")
	}
	if replaceTreatments {
		if err := r.s.checkLinks(p.Treatments); err != nil {
			return pets.Pet{}, err
		}
	}

	r.s.pets[p.ID] = stripLinks(p)
	if replaceTreatments {
		r.s.deleteLinks(p.ID)
		r.s.insertLinks(p.ID, p.Treatments)
	}

	return r.s.loadPet(p.ID), nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.hasPet(id) {
		return apperr.NotFound("Pet")
	}
	r.s.deletePetCascade(id)
	return nil
}

func (r *petRepo) check(p pets.Pet) error {
	if !r.s.hasOwner(p.OwnerID) {
		return missing("Owner")
	}
	return r.s.checkLinks(p.Treatments)
}

// checkLinks: cada tratamiento debe existir y no repetirse dentro del set.
func (s *Store) checkLinks(links []pets.TreatmentLink) error {
	seen := make(map[int64]bool, len(links))
	for _, l := range links {
		if !s.hasTreatment(l.TreatmentID) {
			return missing("Treatment")
		}
		if seen[l.TreatmentID] {
			return apperr.Validationf("treatment %d is already linked to this pet", l.TreatmentID)
		}
		seen[l.TreatmentID] = true
	}
	return nil
}

func (s *Store) insertLinks(petID int64, links []pets.TreatmentLink) {
	for _, l := range links {
		s.petTreatments = append(s.petTreatments, petTreatment{
			petID:         petID,
			treatmentID:   l.TreatmentID,
			treatmentDate: l.TreatmentDate,
			notes:         l.Notes,
		})
	}
}

func (s *Store) deleteLinks(petID int64) {
	s.petTreatments = slices.DeleteFunc(s.petTreatments, func(pt petTreatment) bool {
		return pt.petID == petID
	})
}

// loadPet arma la mascota con sus filas pet_treatments (y la descripción
// de cada tratamiento).
func (s *Store) loadPet(id int64) pets.Pet {
	p := s.pets[id]
	p.Treatments = make([]pets.TreatmentLink, 0)
	for _, pt := range s.petTreatments {
		if pt.petID != id {
			continue
		}
		p.Treatments = append(p.Treatments, pets.TreatmentLink{
			TreatmentID:   pt.treatmentID,
			Description:   s.treatments[pt.treatmentID].Description,
			TreatmentDate: pt.treatmentDate,
			Notes:         pt.notes,
		})
	}
	return p
}

func stripLinks(p pets.Pet) pets.Pet {
	p.Treatments = nil
	return p
}
