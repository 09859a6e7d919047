// Package seed carga datos de prueba pasando por la API pública, así cada
// fila atraviesa las mismas validaciones que un cliente real.
package seed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// API es lo que el seeder necesita del cliente HTTP.
type API interface {
	Post(ctx context.Context, path string, in, out any) error
	Patch(ctx context.Context, path string, in, out any) error
}

// Counts define cuánto se genera. Los rangos son inclusivos.
type Counts struct {
	Staff        int
	Owners       int
	PetsPerOwner [2]int
	Appointments int
	Treatments   int
	PetsPerTreat [2]int
	MedsPerTreat [2]int
	BillsPerPet  [2]int
}

func DefaultCounts() Counts {
	return Counts{
		Staff:        10,
		Owners:       20,
		PetsPerOwner: [2]int{1, 3},
		Appointments: 30,
		Treatments:   25,
		PetsPerTreat: [2]int{1, 2},
		MedsPerTreat: [2]int{0, 3},
		BillsPerPet:  [2]int{0, 3},
	}
}

type Summary struct {
	Staff         int
	Owners        int
	Pets          int
	Appointments  int
	Treatments    int
	PetTreatments int
	Medications   int
	Billings      int
}

var (
	roles           = []string{"Veterinarian", "Receptionist", "Technician", "Assistant"}
	speciesList     = []string{"Dog", "Cat", "Bird", "Rabbit", "Reptile"}
	sexList         = []string{"Male", "Female"}
	colorList       = []string{"Black", "White", "Brown", "Golden", "Spotted", "Gray"}
	medicationNames = []string{"Amoxicillin", "Prednisone", "Metronidazole", "Carprofen", "Enrofloxacin"}
)

type Seeder struct {
	api    API
	log    zerolog.Logger
	counts Counts
	now    func() time.Time
}

func New(api API, counts Counts, log zerolog.Logger) *Seeder {
	return &Seeder{
		api:    api,
		log:    log,
		counts: counts,
		now:    time.Now,
	}
}

type created struct {
	ID int64 `json:"id"`
}

type petLink struct {
	TreatmentID   int64  `json:"treatment_id"`
	TreatmentDate string `json:"treatment_date"`
	Notes         string `json:"notes"`
}

// Run genera todo en orden de dependencias. No borra datos existentes.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	s.log.Info().Msg("seeding staff")
	staffIDs := make([]int64, 0, s.counts.Staff)
	for range s.counts.Staff {
		id, err := s.create(ctx, "/api/staff", map[string]any{
			"name":  randomdata.FullName(randomdata.RandomGender),
			"role":  pick(roles),
			"email": randomdata.Email(),
			"phone": randomdata.PhoneNumber(),
		})
		if err != nil {
			return sum, err
		}
		staffIDs = append(staffIDs, id)
	}
	sum.Staff = len(staffIDs)

	s.log.Info().Msg("seeding owners and pets")
	var petIDs []int64
	for range s.counts.Owners {
		ownerID, err := s.create(ctx, "/api/owners", map[string]any{
			"name":  randomdata.FullName(randomdata.RandomGender),
			"email": randomdata.Email(),
			"phone": randomdata.PhoneNumber(),
		})
		if err != nil {
			return sum, err
		}
		sum.Owners++

		for range between(s.counts.PetsPerOwner) {
			petID, err := s.create(ctx, "/api/pets", map[string]any{
				"name":          randomdata.FirstName(randomdata.RandomGender),
				"species":       pick(speciesList),
				"breed":         randomdata.Adjective(),
				"sex":           pick(sexList),
				"color":         pick(colorList),
				"dob":           s.dateOfBirth().Format("2006-01-02"),
				"medical_notes": randomdata.Paragraph(),
				"owner_id":      ownerID,
			})
			if err != nil {
				return sum, err
			}
			petIDs = append(petIDs, petID)
		}
	}
	sum.Pets = len(petIDs)
	if len(petIDs) == 0 || len(staffIDs) == 0 {
		return sum, nil
	}

	s.log.Info().Msg("seeding appointments")
	for range s.counts.Appointments {
		_, err := s.create(ctx, "/api/appointments", map[string]any{
			"date":     s.lastYear().Format(time.RFC3339),
			"reason":   randomdata.Noun() + " check",
			"pet_id":   pickID(petIDs),
			"staff_id": pickID(staffIDs),
		})
		if err != nil {
			return sum, err
		}
		sum.Appointments++
	}

	s.log.Info().Msg("seeding treatments, medications and pet treatments")
	links := make(map[int64][]petLink)
	for range s.counts.Treatments {
		date := s.lastYear()
		treatmentID, err := s.create(ctx, "/api/treatments", map[string]any{
			"date":        date.Format(time.RFC3339),
			"description": randomdata.Paragraph(),
			"staff_id":    pickID(staffIDs),
		})
		if err != nil {
			return sum, err
		}
		sum.Treatments++

		// 1-2 mascotas distintas por tratamiento
		assigned := make(map[int64]bool)
		for range between(s.counts.PetsPerTreat) {
			petID := pickID(petIDs)
			if assigned[petID] {
				continue
			}
			assigned[petID] = true
			links[petID] = append(links[petID], petLink{
				TreatmentID:   treatmentID,
				TreatmentDate: date.Format(time.RFC3339),
				Notes:         randomdata.SillyName(),
			})
		}

		for range between(s.counts.MedsPerTreat) {
			_, err := s.create(ctx, "/api/medications", map[string]any{
				"name":         pick(medicationNames),
				"dosage":       fmt.Sprintf("%d mg", randomdata.Number(1, 501)),
				"frequency":    fmt.Sprintf("%d times a day", randomdata.Number(1, 4)),
				"treatment_id": treatmentID,
			})
			if err != nil {
				return sum, err
			}
			sum.Medications++
		}
	}

	// Un PATCH por mascota con el set completo.
	for _, petID := range petIDs {
		set, ok := links[petID]
		if !ok {
			continue
		}
		path := "/api/pets/" + strconv.FormatInt(petID, 10)
		if err := s.api.Patch(ctx, path, map[string]any{"treatments": set}, nil); err != nil {
			return sum, errors.Wrapf(err, "link treatments to pet %d", petID)
		}
		sum.PetTreatments += len(set)
	}

	s.log.Info().Msg("seeding billings")
	for _, petID := range petIDs {
		for range between(s.counts.BillsPerPet) {
			_, err := s.create(ctx, "/api/billings", map[string]any{
				"date":        s.lastYear().Format(time.RFC3339),
				"amount":      randomdata.Decimal(20, 500, 2),
				"description": randomdata.Noun() + " service",
				"paid":        randomdata.Boolean(),
				"pet_id":      petID,
			})
			if err != nil {
				return sum, err
			}
			sum.Billings++
		}
	}

	return sum, nil
}

func (s *Seeder) create(ctx context.Context, path string, payload map[string]any) (int64, error) {
	var out created
	if err := s.api.Post(ctx, path, payload, &out); err != nil {
		return 0, errors.Wrapf(err, "seed %s", path)
	}
	return out.ID, nil
}

// lastYear: instante al azar del último año, al segundo.
func (s *Seeder) lastYear() time.Time {
	now := s.now().UTC().Truncate(time.Second)
	return now.Add(-time.Duration(randomdata.Number(365*24*60*60)) * time.Second)
}

// dateOfBirth: entre 1 y 15 años atrás.
func (s *Seeder) dateOfBirth() time.Time {
	now := s.now().UTC()
	days := randomdata.Number(365, 15*365+1)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)
}

func between(r [2]int) int {
	if r[1] <= r[0] {
		return r[0]
	}
	return randomdata.Number(r[0], r[1]+1)
}

func pick(list []string) string {
	return randomdata.StringSample(list...)
}

func pickID(ids []int64) int64 {
	return ids[randomdata.Number(len(ids))]
}
