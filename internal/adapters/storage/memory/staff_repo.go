package memory

import (
	"context"

	"vet-clinic/internal/domain/staff"
	"vet-clinic/internal/platform/apperr"
)

type staffRepo struct {
	s *Store
}

func NewStaffRepo(s *Store) staff.Repository {
	return &staffRepo{s: s}
}

func (r *staffRepo) Create(ctx context.Context, m staff.Staff) (staff.Staff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.ID = r.s.nextID("staff")
	r.s.staff[m.ID] = m
	return m, nil
}

func (r *staffRepo) List(ctx context.Context) ([]staff.Staff, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]staff.Staff, 0, len(r.s.staff))
	for _, id := range sortedIDs(r.s.staff) {
		out = append(out, r.s.staff[id])
	}
	return out, nil
}

func (r *staffRepo) GetByID(ctx context.Context, id int64) (staff.Staff, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.staff[id]
	if !ok {
		return staff.Staff{}, apperr.NotFound("Staff")
	}
	return m, nil
}

func (r *staffRepo) Update(ctx context.Context, m staff.Staff) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.staff[m.ID]; !ok {
		return apperr.NotFound("Staff")
	}
	r.s.staff[m.ID] = m
	return nil
}

func (r *staffRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.staff[id]; !ok {
		return apperr.NotFound("Staff")
	}
	r.s.deleteStaffCascade(id)
	return nil
}
