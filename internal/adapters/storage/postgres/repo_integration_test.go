package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"vet-clinic/internal/domain/billings"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/staff"
	"vet-clinic/internal/domain/treatments"
	"vet-clinic/internal/platform/apperr"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Corre solo con VETCLINIC_TEST_DSN apuntando a una base descartable.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("VETCLINIC_TEST_DSN")
	if dsn == "" {
		t.Skip("VETCLINIC_TEST_DSN not set")
	}

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, dsn, zerolog.Nop()))

	db, err := Open(dsn, Options{MaxOpenConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `TRUNCATE staff, owners, pets, appointments, treatments, pet_treatments, medications, billings RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return db
}

func TestPostgres_PetLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	ownersRepo := NewOwnersRepo(db)
	petsRepo := NewPetsRepo(db)
	treatmentsRepo := NewTreatmentsRepo(db)
	billingsRepo := NewBillingsRepo(db)

	o, err := ownersRepo.Create(ctx, owners.Owner{Name: "Ana", Email: "ana@example.com", Phone: "555"})
	require.NoError(t, err)
	t1, err := treatmentsRepo.Create(ctx, treatments.Treatment{Description: "Vacuna"})
	require.NoError(t, err)
	t2, err := treatmentsRepo.Create(ctx, treatments.Treatment{Description: "Control"})
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	p, err := petsRepo.Create(ctx, pets.Pet{
		Name: "Rex", Species: "Dog", OwnerID: o.ID,
		Treatments: []pets.TreatmentLink{
			{TreatmentID: t1.ID, TreatmentDate: now},
			{TreatmentID: t2.ID, TreatmentDate: now},
		},
	})
	require.NoError(t, err)
	require.Len(t, p.Treatments, 2)
	assert.Equal(t, "Vacuna", p.Treatments[0].Description)

	// par repetido => 400 y nada se guarda
	_, err = petsRepo.Create(ctx, pets.Pet{
		Name: "Dup", Species: "Cat", OwnerID: o.ID,
		Treatments: []pets.TreatmentLink{{TreatmentID: t1.ID, TreatmentDate: now}, {TreatmentID: t1.ID, TreatmentDate: now}},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	list, err := petsRepo.List(ctx, pets.ListFilter{Species: "Cat"})
	require.NoError(t, err)
	assert.Empty(t, list)

	// FK inexistente
	_, err = petsRepo.Create(ctx, pets.Pet{Name: "X", Species: "Dog", OwnerID: 9999})
	assert.True(t, apperr.IsValidation(err))

	p.Treatments = []pets.TreatmentLink{{TreatmentID: t2.ID, TreatmentDate: now}}
	p, err = petsRepo.Update(ctx, p, true)
	require.NoError(t, err)
	require.Len(t, p.Treatments, 1)

	b, err := billingsRepo.Create(ctx, billings.Billing{PetID: p.ID, Amount: decimal.RequireFromString("15.75"), Description: "consulta"})
	require.NoError(t, err)
	b, err = billingsRepo.SetPaid(ctx, b.ID, true)
	require.NoError(t, err)
	assert.True(t, b.Paid)
	assert.Equal(t, "15.75", b.Amount.StringFixed(2))

	_, err = billingsRepo.Create(ctx, billings.Billing{PetID: p.ID, Amount: decimal.NewFromInt(-1), Description: "x"})
	assert.True(t, apperr.IsValidation(err))

	require.NoError(t, ownersRepo.Delete(ctx, o.ID))

	list, err = petsRepo.List(ctx, pets.ListFilter{OwnerID: &o.ID})
	require.NoError(t, err)
	assert.Empty(t, list)

	bills, err := billingsRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, bills)

	trs, err := treatmentsRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, trs, 2)
}

func TestPostgres_StaffDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	staffRepo := NewStaffRepo(db)
	treatmentsRepo := NewTreatmentsRepo(db)
	appointmentsRepo := NewAppointmentsRepo(db)

	s, err := staffRepo.Create(ctx, staff.Staff{Name: "Dra. Paz", Role: "vet", Email: "paz@example.com", Phone: "1"})
	require.NoError(t, err)
	_, err = treatmentsRepo.Create(ctx, treatments.Treatment{Description: "Cirugía", StaffID: &s.ID})
	require.NoError(t, err)

	require.NoError(t, staffRepo.Delete(ctx, s.ID))

	trs, err := treatmentsRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, trs)

	appts, err := appointmentsRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, appts)

	assert.True(t, apperr.IsNotFound(staffRepo.Delete(ctx, s.ID)))
}
