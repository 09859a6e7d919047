package memory

import (
	"context"
	"testing"
	"time"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/billings"
	"vet-clinic/internal/domain/medications"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/staff"
	"vet-clinic/internal/domain/treatments"
	"vet-clinic/internal/platform/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store *Store

	staff        staff.Repository
	owners       owners.Repository
	pets         pets.Repository
	appointments appointments.Repository
	treatments   treatments.Repository
	medications  medications.Repository
	billings     billings.Repository
}

func newFixture() fixture {
	s := NewStore()
	return fixture{
		store:        s,
		staff:        NewStaffRepo(s),
		owners:       NewOwnerRepo(s),
		pets:         NewPetRepo(s),
		appointments: NewAppointmentRepo(s),
		treatments:   NewTreatmentRepo(s),
		medications:  NewMedicationRepo(s),
		billings:     NewBillingRepo(s),
	}
}

func id(v int64) *int64 { return &v }

func TestPetRepo_CreateRejectsMissingOwner(t *testing.T) {
	f := newFixture()

	_, err := f.pets.Create(context.Background(), pets.Pet{Name: "Rex", Species: "Dog", OwnerID: 42})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "Owner does not exist", err.Error())
}

func TestPetRepo_CreateWithBadTreatmentRollsBack(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	o, err := f.owners.Create(ctx, owners.Owner{Name: "Ana"})
	require.NoError(t, err)
	tr, err := f.treatments.Create(ctx, treatments.Treatment{Description: "Vacuna"})
	require.NoError(t, err)

	_, err = f.pets.Create(ctx, pets.Pet{
		Name: "Rex", Species: "Dog", OwnerID: o.ID,
		Treatments: []pets.TreatmentLink{{TreatmentID: tr.ID}, {TreatmentID: 999}},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	list, err := f.pets.List(ctx, pets.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, f.store.petTreatments)
}

func TestPetRepo_DuplicatePairRejected(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	o, _ := f.owners.Create(ctx, owners.Owner{Name: "Ana"})
	tr, _ := f.treatments.Create(ctx, treatments.Treatment{Description: "Vacuna"})

	_, err := f.pets.Create(ctx, pets.Pet{
		Name: "Rex", Species: "Dog", OwnerID: o.ID,
		Treatments: []pets.TreatmentLink{{TreatmentID: tr.ID}, {TreatmentID: tr.ID}},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestPetRepo_UpdateReplacesLinks(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	o, _ := f.owners.Create(ctx, owners.Owner{Name: "Ana"})
	t1, _ := f.treatments.Create(ctx, treatments.Treatment{Description: "Vacuna"})
	t2, _ := f.treatments.Create(ctx, treatments.Treatment{Description: "Desparasitación"})
	t3, _ := f.treatments.Create(ctx, treatments.Treatment{Description: "Control"})

	p, err := f.pets.Create(ctx, pets.Pet{
		Name: "Rex", Species: "Dog", OwnerID: o.ID,
		Treatments: []pets.TreatmentLink{{TreatmentID: t1.ID}, {TreatmentID: t2.ID}},
	})
	require.NoError(t, err)
	require.Len(t, p.Treatments, 2)
	assert.Equal(t, "Vacuna", p.Treatments[0].Description)

	p.Treatments = []pets.TreatmentLink{{TreatmentID: t3.ID, TreatmentDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}}
	updated, err := f.pets.Update(ctx, p, true)
	require.NoError(t, err)
	require.Len(t, updated.Treatments, 1)
	assert.Equal(t, t3.ID, updated.Treatments[0].TreatmentID)

	// sin replace no se tocan
	updated.Name = "Rexy"
	updated.Treatments = nil
	again, err := f.pets.Update(ctx, updated, false)
	require.NoError(t, err)
	assert.Equal(t, "Rexy", again.Name)
	assert.Len(t, again.Treatments, 1)
}

func TestPetRepo_ListFilters(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	o1, _ := f.owners.Create(ctx, owners.Owner{Name: "Ana"})
	o2, _ := f.owners.Create(ctx, owners.Owner{Name: "Beto"})

	for _, p := range []pets.Pet{
		{Name: "Rex", Species: "Dog", Sex: "Male", OwnerID: o1.ID},
		{Name: "Luna", Species: "Dog", Sex: "Female", OwnerID: o1.ID},
		{Name: "Tom", Species: "Cat", Sex: "Male", OwnerID: o2.ID},
		{Name: "Fido", Species: "dog", Sex: "Male", OwnerID: o2.ID},
	} {
		_, err := f.pets.Create(ctx, p)
		require.NoError(t, err)
	}

	got, err := f.pets.List(ctx, pets.ListFilter{Species: "Dog", Sex: "Male"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rex", got[0].Name)

	got, err = f.pets.List(ctx, pets.ListFilter{OwnerID: id(o2.ID)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Tom", got[0].Name)
}

func TestOwnerRepo_DeleteCascades(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	o, _ := f.owners.Create(ctx, owners.Owner{Name: "Ana"})
	tr, _ := f.treatments.Create(ctx, treatments.Treatment{Description: "Vacuna"})
	p, err := f.pets.Create(ctx, pets.Pet{
		Name: "Rex", Species: "Dog", OwnerID: o.ID,
		Treatments: []pets.TreatmentLink{{TreatmentID: tr.ID}},
	})
	require.NoError(t, err)

	_, err = f.appointments.Create(ctx, appointments.Appointment{Reason: "control", PetID: id(p.ID)})
	require.NoError(t, err)
	_, err = f.billings.Create(ctx, billings.Billing{PetID: p.ID, Amount: decimal.NewFromInt(10), Description: "consulta"})
	require.NoError(t, err)

	require.NoError(t, f.owners.Delete(ctx, o.ID))

	list, _ := f.pets.List(ctx, pets.ListFilter{OwnerID: id(o.ID)})
	assert.Empty(t, list)
	appts, _ := f.appointments.List(ctx)
	assert.Empty(t, appts)
	bills, _ := f.billings.List(ctx)
	assert.Empty(t, bills)

	// el tratamiento sobrevive, sin mascotas
	trs, _ := f.treatments.List(ctx)
	require.Len(t, trs, 1)
	assert.Empty(t, trs[0].Pets)
}

func TestStaffRepo_DeleteCascades(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	s, _ := f.staff.Create(ctx, staff.Staff{Name: "Dra. Paz"})
	other, _ := f.staff.Create(ctx, staff.Staff{Name: "Dr. Sol"})
	o, _ := f.owners.Create(ctx, owners.Owner{Name: "Ana"})

	tr, err := f.treatments.Create(ctx, treatments.Treatment{Description: "Vacuna", StaffID: id(s.ID)})
	require.NoError(t, err)
	keep, err := f.treatments.Create(ctx, treatments.Treatment{Description: "Control", StaffID: id(other.ID)})
	require.NoError(t, err)
	_, err = f.medications.Create(ctx, medications.Medication{Name: "Amoxicilina", TreatmentID: id(tr.ID)})
	require.NoError(t, err)
	_, err = f.appointments.Create(ctx, appointments.Appointment{Reason: "control", StaffID: id(s.ID)})
	require.NoError(t, err)

	p, err := f.pets.Create(ctx, pets.Pet{
		Name: "Rex", Species: "Dog", OwnerID: o.ID,
		Treatments: []pets.TreatmentLink{{TreatmentID: tr.ID}, {TreatmentID: keep.ID}},
	})
	require.NoError(t, err)

	require.NoError(t, f.staff.Delete(ctx, s.ID))

	trs, _ := f.treatments.List(ctx)
	require.Len(t, trs, 1)
	assert.Equal(t, keep.ID, trs[0].ID)

	meds, _ := f.medications.List(ctx)
	assert.Empty(t, meds)
	appts, _ := f.appointments.List(ctx)
	assert.Empty(t, appts)

	got, err := f.pets.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Treatments, 1)
	assert.Equal(t, keep.ID, got.Treatments[0].TreatmentID)
}

func TestTreatmentRepo_ListIncludesMedicationsAndPets(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	o, _ := f.owners.Create(ctx, owners.Owner{Name: "Ana"})
	tr, _ := f.treatments.Create(ctx, treatments.Treatment{Description: "Vacuna"})
	_, err := f.medications.Create(ctx, medications.Medication{Name: "Antirrábica", TreatmentID: id(tr.ID)})
	require.NoError(t, err)
	_, err = f.pets.Create(ctx, pets.Pet{
		Name: "Rex", Species: "Dog", OwnerID: o.ID,
		Treatments: []pets.TreatmentLink{{TreatmentID: tr.ID}},
	})
	require.NoError(t, err)

	trs, err := f.treatments.List(ctx)
	require.NoError(t, err)
	require.Len(t, trs, 1)
	require.Len(t, trs[0].Medications, 1)
	assert.Equal(t, "Antirrábica", trs[0].Medications[0].Name)
	require.Len(t, trs[0].Pets, 1)
	assert.Equal(t, "Rex", trs[0].Pets[0].Name)
}

func TestOptionalRefs_Validated(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.appointments.Create(ctx, appointments.Appointment{PetID: id(5)})
	assert.True(t, apperr.IsValidation(err))

	_, err = f.treatments.Create(ctx, treatments.Treatment{StaffID: id(5)})
	assert.True(t, apperr.IsValidation(err))

	_, err = f.medications.Create(ctx, medications.Medication{TreatmentID: id(5)})
	assert.True(t, apperr.IsValidation(err))

	_, err = f.billings.Create(ctx, billings.Billing{PetID: 5, Amount: decimal.Zero})
	assert.True(t, apperr.IsValidation(err))

	// sin FKs no hay nada que validar
	a, err := f.appointments.Create(ctx, appointments.Appointment{Reason: "walk-in"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
}

func TestBillingRepo_SetPaidAndDelete(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	o, _ := f.owners.Create(ctx, owners.Owner{Name: "Ana"})
	p, _ := f.pets.Create(ctx, pets.Pet{Name: "Rex", Species: "Dog", OwnerID: o.ID})
	b, err := f.billings.Create(ctx, billings.Billing{PetID: p.ID, Amount: decimal.RequireFromString("12.50"), Description: "consulta"})
	require.NoError(t, err)
	assert.False(t, b.Paid)

	paid, err := f.billings.SetPaid(ctx, b.ID, true)
	require.NoError(t, err)
	assert.True(t, paid.Paid)
	assert.True(t, paid.Amount.Equal(b.Amount))
	assert.Equal(t, "consulta", paid.Description)

	require.NoError(t, f.billings.Delete(ctx, b.ID))
	assert.True(t, apperr.IsNotFound(f.billings.Delete(ctx, b.ID)))
}

func TestStaffRepo_NotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.staff.GetByID(ctx, 1)
	assert.True(t, apperr.IsNotFound(err))
	assert.True(t, apperr.IsNotFound(f.staff.Update(ctx, staff.Staff{ID: 1})))
	assert.True(t, apperr.IsNotFound(f.staff.Delete(ctx, 1)))
}
