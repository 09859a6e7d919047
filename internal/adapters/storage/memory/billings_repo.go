package memory

import (
	"context"

	"vet-clinic/internal/domain/billings"
	"vet-clinic/internal/platform/apperr"
)

type billingRepo struct {
	s *Store
}

func NewBillingRepo(s *Store) billings.Repository {
	return &billingRepo{s: s}
}

func (r *billingRepo) Create(ctx context.Context, b billings.Billing) (billings.Billing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.hasPet(b.PetID) {
		return billings.Billing{}, missing("Pet")
	}
	if b.Amount.IsNegative() {
		return billings.Billing{}, apperr.Validation("amount must be greater than or equal to 0")
	}

	b.ID = r.s.nextID("billings")
	r.s.billings[b.ID] = b
	return b, nil
}

func (r *billingRepo) List(ctx context.Context) ([]billings.Billing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]billings.Billing, 0, len(r.s.billings))
	for _, id := range sortedIDs(r.s.billings) {
		out = append(out, r.s.billings[id])
	}
	return out, nil
}

func (r *billingRepo) GetByID(ctx context.Context, id int64) (billings.Billing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.billings[id]
	if !ok {
		return billings.Billing{}, apperr.NotFound("Billing")
	}
	return b, nil
}

func (r *billingRepo) SetPaid(ctx context.Context, id int64, paid bool) (billings.Billing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.billings[id]
	if !ok {
		return billings.Billing{}, apperr.NotFound("Billing")
	}
	b.Paid = paid
	r.s.billings[id] = b
	return b, nil
}

func (r *billingRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.billings[id]; !ok {
		return apperr.NotFound("Billing")
	}
	delete(r.s.billings, id)
	return nil
}
