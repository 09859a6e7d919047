package billings

import (
	"context"
	"testing"

	"vet-clinic/internal/platform/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	nextID  int64
	byID    map[int64]Billing
	setPaid int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Billing{}}
}

func (r *testRepo) Create(ctx context.Context, b Billing) (Billing, error) {
	r.nextID++
	b.ID = r.nextID
	r.byID[b.ID] = b
	return b, nil
}

func (r *testRepo) List(ctx context.Context) ([]Billing, error) {
	out := make([]Billing, 0, len(r.byID))
	for id := int64(1); id <= r.nextID; id++ {
		if b, ok := r.byID[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Billing, error) {
	b, ok := r.byID[id]
	if !ok {
		return Billing{}, apperr.NotFound("Billing")
	}
	return b, nil
}

func (r *testRepo) SetPaid(ctx context.Context, id int64, paid bool) (Billing, error) {
	r.setPaid++
	b, ok := r.byID[id]
	if !ok {
		return Billing{}, apperr.NotFound("Billing")
	}
	b.Paid = paid
	r.byID[id] = b
	return b, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.NotFound("Billing")
	}
	delete(r.byID, id)
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestService_Create_RoundsAmount(t *testing.T) {
	svc := NewService(newTestRepo())

	b, err := svc.Create(context.Background(), CreateInput{
		PetID:       ptr(int64(1)),
		Amount:      ptr(decimal.RequireFromString("120.505")),
		Description: " Consulta ",
	})
	require.NoError(t, err)

	assert.Equal(t, "120.51", b.Amount.StringFixed(2))
	assert.Equal(t, "Consulta", b.Description)
	assert.False(t, b.Paid)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		Amount:      ptr(decimal.NewFromInt(-5)),
		Description: "   ",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	fields := map[string]bool{}
	for _, f := range apperr.Fields(err) {
		fields[f.Field] = true
	}
	assert.True(t, fields["pet_id"])
	assert.True(t, fields["amount"])
	assert.True(t, fields["description"])
}

func TestService_SetPaid(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateInput{
		PetID:       ptr(int64(1)),
		Amount:      ptr(decimal.NewFromInt(50)),
		Description: "Vacuna",
	})
	require.NoError(t, err)

	// Sin "paid" no se toca nada.
	same, err := svc.SetPaid(ctx, b.ID, nil)
	require.NoError(t, err)
	assert.False(t, same.Paid)
	assert.Equal(t, 0, repo.setPaid)

	paid, err := svc.SetPaid(ctx, b.ID, ptr(true))
	require.NoError(t, err)
	assert.True(t, paid.Paid)

	_, err = svc.SetPaid(ctx, 99, ptr(true))
	assert.True(t, apperr.IsNotFound(err))
}
