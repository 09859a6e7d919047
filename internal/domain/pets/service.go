package pets

import (
	"context"
	"strings"
	"time"

	"vet-clinic/internal/platform/apperr"
	"vet-clinic/internal/platform/validation"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// TreatmentInput es un elemento de "treatments" en create/update.
type TreatmentInput struct {
	TreatmentID   *int64     `json:"treatment_id" validate:"required"`
	TreatmentDate *time.Time `json:"treatment_date"` // nil => ahora
	Notes         string     `json:"notes"`
}

type CreateInput struct {
	Name         string           `json:"name" validate:"required"`
	Species      string           `json:"species" validate:"required"`
	Breed        string           `json:"breed"`
	Sex          string           `json:"sex"`
	Color        string           `json:"color"`
	DOB          *time.Time       `json:"dob"`
	MedicalNotes string           `json:"medical_notes"`
	OwnerID      *int64           `json:"owner_id" validate:"required"`
	Treatments   []TreatmentInput `json:"treatments" validate:"dive"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Species = strings.TrimSpace(in.Species)

	if err := validation.Struct(in); err != nil {
		return Pet{}, err
	}

	p := Pet{
		OwnerID:      *in.OwnerID,
		Name:         in.Name,
		Species:      in.Species,
		Breed:        strings.TrimSpace(in.Breed),
		Sex:          strings.TrimSpace(in.Sex),
		Color:        strings.TrimSpace(in.Color),
		DOB:          in.DOB,
		MedicalNotes: strings.TrimSpace(in.MedicalNotes),
		Treatments:   s.toLinks(in.Treatments),
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Pet, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// OptionalDate distingue "no enviado" de null (= limpiar).
type OptionalDate struct {
	Present bool
	Value   *time.Time
}

// UpdateInput: punteros nil = no tocar. Treatments nil = no tocar;
// no-nil (aunque esté vacío) = reemplazar el set completo.
type UpdateInput struct {
	Name         *string
	Species      *string
	Breed        *string
	Sex          *string
	Color        *string
	DOB          OptionalDate
	MedicalNotes *string
	OwnerID      *int64
	Treatments   *[]TreatmentInput
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Pet{}, apperr.Validation("name must not be empty")
		}
		current.Name = v
	}
	if in.Species != nil {
		v := strings.TrimSpace(*in.Species)
		if v == "" {
			return Pet{}, apperr.Validation("species must not be empty")
		}
		current.Species = v
	}
	if in.Breed != nil {
		current.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Sex != nil {
		current.Sex = strings.TrimSpace(*in.Sex)
	}
	if in.Color != nil {
		current.Color = strings.TrimSpace(*in.Color)
	}
	if in.DOB.Present {
		current.DOB = in.DOB.Value
	}
	if in.MedicalNotes != nil {
		current.MedicalNotes = strings.TrimSpace(*in.MedicalNotes)
	}
	if in.OwnerID != nil {
		current.OwnerID = *in.OwnerID
	}

	replace := in.Treatments != nil
	if replace {
		links, err := s.validLinks(*in.Treatments)
		if err != nil {
			return Pet{}, err
		}
		current.Treatments = links
	}

	return s.repo.Update(ctx, current, replace)
}

// ReplaceTreatments reemplaza todas las filas pet_treatments de la mascota.
// No hace diff: borra todo e inserta lo recibido.
func (s *Service) ReplaceTreatments(ctx context.Context, petID int64, treatments []TreatmentInput) (Pet, error) {
	current, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	links, err := s.validLinks(treatments)
	if err != nil {
		return Pet{}, err
	}
	current.Treatments = links

	return s.repo.Update(ctx, current, true)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

type treatmentsInput struct {
	Treatments []TreatmentInput `json:"treatments" validate:"dive"`
}

func (s *Service) validLinks(in []TreatmentInput) ([]TreatmentLink, error) {
	if err := validation.Struct(treatmentsInput{Treatments: in}); err != nil {
		return nil, err
	}
	return s.toLinks(in), nil
}

func (s *Service) toLinks(in []TreatmentInput) []TreatmentLink {
	now := s.now().UTC()
	out := make([]TreatmentLink, 0, len(in))
	for _, t := range in {
		date := now
		if t.TreatmentDate != nil {
			date = *t.TreatmentDate
		}
		out = append(out, TreatmentLink{
			TreatmentID:   *t.TreatmentID,
			TreatmentDate: date,
			Notes:         strings.TrimSpace(t.Notes),
		})
	}
	return out
}
