package pets

import (
	"context"
	"testing"
	"time"

	"vet-clinic/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	nextID       int64
	byID         map[int64]Pet
	lastReplace  bool
	updatedCalls int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	out := make([]Pet, 0)
	for id := int64(1); id <= r.nextID; id++ {
		p, ok := r.byID[id]
		if !ok {
			continue
		}
		if filter.Species != "" && p.Species != filter.Species {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, apperr.NotFound("Pet")
	}
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet, replaceTreatments bool) (Pet, error) {
	r.updatedCalls++
	r.lastReplace = replaceTreatments
	if !replaceTreatments {
		p.Treatments = r.byID[p.ID].Treatments
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return apperr.NotFound("Pet")
	}
	delete(r.byID, id)
	return nil
}

func ptr[T any](v T) *T { return &v }

// -------------------------
// Tests
// -------------------------

func TestService_Create_RequiresNameSpeciesOwner(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{Name: "  ", Species: "Dog"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	fields := map[string]bool{}
	for _, f := range apperr.Fields(err) {
		fields[f.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["owner_id"])
	assert.False(t, fields["species"])
}

func TestService_Create_TreatmentDateDefaultsToNow(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	given := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	p, err := svc.Create(context.Background(), CreateInput{
		Name:    "Rex",
		Species: "Dog",
		OwnerID: ptr(int64(1)),
		Treatments: []TreatmentInput{
			{TreatmentID: ptr(int64(10)), Notes: " first "},
			{TreatmentID: ptr(int64(11)), TreatmentDate: &given},
		},
	})
	require.NoError(t, err)
	require.Len(t, p.Treatments, 2)

	assert.Equal(t, now, p.Treatments[0].TreatmentDate)
	assert.Equal(t, "first", p.Treatments[0].Notes)
	assert.Equal(t, given, p.Treatments[1].TreatmentDate)
}

func TestService_Create_TreatmentWithoutID(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		Name:       "Rex",
		Species:    "Dog",
		OwnerID:    ptr(int64(1)),
		Treatments: []TreatmentInput{{Notes: "sin id"}},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Contains(t, err.Error(), "treatment_id")
}

func TestService_Update_OnlyTouchesSentFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	dob := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	p, err := svc.Create(ctx, CreateInput{
		Name: "Rex", Species: "Dog", Breed: "Mixed", DOB: &dob, OwnerID: ptr(int64(1)),
		Treatments: []TreatmentInput{{TreatmentID: ptr(int64(5))}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID, UpdateInput{Name: ptr("Rexy")})
	require.NoError(t, err)

	assert.Equal(t, "Rexy", updated.Name)
	assert.Equal(t, "Mixed", updated.Breed)
	require.NotNil(t, updated.DOB)
	assert.False(t, repo.lastReplace)
	assert.Len(t, updated.Treatments, 1)
}

func TestService_Update_NullDOBClears(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	dob := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	p, err := svc.Create(ctx, CreateInput{Name: "Rex", Species: "Dog", DOB: &dob, OwnerID: ptr(int64(1))})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID, UpdateInput{DOB: OptionalDate{Present: true}})
	require.NoError(t, err)
	assert.Nil(t, updated.DOB)
}

func TestService_Update_EmptyTreatmentsReplaces(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{
		Name: "Rex", Species: "Dog", OwnerID: ptr(int64(1)),
		Treatments: []TreatmentInput{{TreatmentID: ptr(int64(5))}, {TreatmentID: ptr(int64(6))}},
	})
	require.NoError(t, err)

	empty := []TreatmentInput{}
	updated, err := svc.Update(ctx, p.ID, UpdateInput{Treatments: &empty})
	require.NoError(t, err)

	assert.True(t, repo.lastReplace)
	assert.Empty(t, updated.Treatments)
}

func TestService_Update_RejectsBlankName(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{Name: "Rex", Species: "Dog", OwnerID: ptr(int64(1))})
	require.NoError(t, err)

	_, err = svc.Update(ctx, p.ID, UpdateInput{Name: ptr("   ")})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, 0, repo.updatedCalls)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Update(context.Background(), 99, UpdateInput{Name: ptr("x")})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_ReplaceTreatments(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{
		Name: "Rex", Species: "Dog", OwnerID: ptr(int64(1)),
		Treatments: []TreatmentInput{{TreatmentID: ptr(int64(5))}},
	})
	require.NoError(t, err)

	updated, err := svc.ReplaceTreatments(ctx, p.ID, []TreatmentInput{{TreatmentID: ptr(int64(7))}})
	require.NoError(t, err)

	require.Len(t, updated.Treatments, 1)
	assert.Equal(t, int64(7), updated.Treatments[0].TreatmentID)
	assert.True(t, repo.lastReplace)
}
