// Package memory implementa los repositorios sobre mapas en memoria.
// Es el store por defecto en dev y el que usan los tests HTTP.
package memory

import (
	"maps"
	"slices"
	"sync"
	"time"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/billings"
	"vet-clinic/internal/domain/medications"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/staff"
	"vet-clinic/internal/domain/treatments"
	"vet-clinic/internal/platform/apperr"
)

// petTreatment es una fila de la tabla asociativa. Identidad (petID, treatmentID).
type petTreatment struct {
	petID         int64
	treatmentID   int64
	treatmentDate time.Time
	notes         string
}

// Store guarda todas las tablas detrás de un único lock. Cada operación de
// escritura toma el lock completo, valida todo y recién después muta: una
// falla no deja nada a medio escribir.
type Store struct {
	mu sync.RWMutex

	seq map[string]int64

	staff        map[int64]staff.Staff
	owners       map[int64]owners.Owner
	pets         map[int64]pets.Pet
	appointments map[int64]appointments.Appointment
	treatments   map[int64]treatments.Treatment
	medications  map[int64]medications.Medication
	billings     map[int64]billings.Billing

	// En orden de alta.
	petTreatments []petTreatment
}

func NewStore() *Store {
	return &Store{
		seq:          make(map[string]int64),
		staff:        make(map[int64]staff.Staff),
		owners:       make(map[int64]owners.Owner),
		pets:         make(map[int64]pets.Pet),
		appointments: make(map[int64]appointments.Appointment),
		treatments:   make(map[int64]treatments.Treatment),
		medications:  make(map[int64]medications.Medication),
		billings:     make(map[int64]billings.Billing),
	}
}

func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func sortedIDs[V any](m map[int64]V) []int64 {
	return slices.Sorted(maps.Keys(m))
}

// -------------------------
// FKs
// -------------------------

func missing(entity string) error {
	return apperr.Validationf("%s does not exist", entity)
}

func (s *Store) checkOptionalRef(id *int64, entity string, exists func(int64) bool) error {
	if id == nil {
		return nil
	}
	if !exists(*id) {
		return missing(entity)
	}
	return nil
}

func (s *Store) hasStaff(id int64) bool {
	_, ok := s.staff[id]
	return ok
}

func (s *Store) hasOwner(id int64) bool {
	_, ok := s.owners[id]
	return ok
}

func (s *Store) hasPet(id int64) bool {
	_, ok := s.pets[id]
	return ok
}

func (s *Store) hasTreatment(id int64) bool {
	_, ok := s.treatments[id]
	return ok
}

// -------------------------
// Cascadas (llamar con s.mu tomado en escritura)
// -------------------------

func (s *Store) deleteOwnerCascade(id int64) {
	for _, petID := range sortedIDs(s.pets) {
		if s.pets[petID].OwnerID == id {
			s.deletePetCascade(petID)
		}
	}
	delete(s.owners, id)
}

// deletePetCascade borra turnos, facturas y filas pet_treatments de la
// mascota. Los tratamientos quedan.
func (s *Store) deletePetCascade(id int64) {
	for aid, a := range s.appointments {
		if a.PetID != nil && *a.PetID == id {
			delete(s.appointments, aid)
		}
	}
	for bid, b := range s.billings {
		if b.PetID == id {
			delete(s.billings, bid)
		}
	}
	s.deleteLinks(id)
	delete(s.pets, id)
}

func (s *Store) deleteStaffCascade(id int64) {
	for aid, a := range s.appointments {
		if a.StaffID != nil && *a.StaffID == id {
			delete(s.appointments, aid)
		}
	}
	for _, tid := range sortedIDs(s.treatments) {
		t := s.treatments[tid]
		if t.StaffID != nil && *t.StaffID == id {
			s.deleteTreatmentCascade(tid)
		}
	}
	delete(s.staff, id)
}

// deleteTreatmentCascade borra medicaciones y filas pet_treatments. Las mascotas quedan.
func (s *Store) deleteTreatmentCascade(id int64) {
	for mid, m := range s.medications {
		if m.TreatmentID != nil && *m.TreatmentID == id {
			delete(s.medications, mid)
		}
	}
	s.petTreatments = slices.DeleteFunc(s.petTreatments, func(pt petTreatment) bool {
		return pt.treatmentID == id
	})
	delete(s.treatments, id)
}
