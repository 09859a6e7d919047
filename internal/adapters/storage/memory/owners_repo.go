package memory

import (
	"context"

	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/platform/apperr"
)

type ownerRepo struct {
	s *Store
}

func NewOwnerRepo(s *Store) owners.Repository {
	return &ownerRepo{s: s}
}

func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o.ID = r.s.nextID("owners")
	r.s.owners[o.ID] = o
	return o, nil
}

func (r *ownerRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.s.owners))
	for _, id := range sortedIDs(r.s.owners) {
		out = append(out, r.s.owners[id])
	}
	return out, nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	if !ok {
		return owners.Owner{}, apperr.NotFound("Owner")
	}
	return o, nil
}

func (r *ownerRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[id]; !ok {
		return apperr.NotFound("Owner")
	}
	r.s.deleteOwnerCascade(id)
	return nil
}
