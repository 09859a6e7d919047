package pets

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vet-clinic/internal/platform/apperr"
	"vet-clinic/internal/platform/payload"
	"vet-clinic/internal/platform/render"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{id}", getPetHandler(svc))
		pr.Patch("/{id}", updatePetHandler(svc))
		pr.Delete("/{id}", deletePetHandler(svc))
	})
}

type treatmentLinkRequest struct {
	TreatmentID   *payload.ID `json:"treatment_id"`
	TreatmentDate *string     `json:"treatment_date"` // ISO-8601 opcional
	Notes         string      `json:"notes"`
}

type createPetRequest struct {
	Name         string                 `json:"name"`
	Species      string                 `json:"species"`
	Breed        string                 `json:"breed"`
	Sex          string                 `json:"sex"`
	Color        string                 `json:"color"`
	DOB          *string                `json:"dob"` // ISO-8601 opcional
	MedicalNotes string                 `json:"medical_notes"`
	OwnerID      *payload.ID            `json:"owner_id"`
	Treatments   []treatmentLinkRequest `json:"treatments"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	// dob y treatments se leen aparte para detectar presencia/null.
	Name         *string     `json:"name"`
	Species      *string     `json:"species"`
	Breed        *string     `json:"breed"`
	Sex          *string     `json:"sex"`
	Color        *string     `json:"color"`
	MedicalNotes *string     `json:"medical_notes"`
	OwnerID      *payload.ID `json:"owner_id"`
}

type petTreatmentResponse struct {
	TreatmentID   int64     `json:"treatment_id"`
	Description   string    `json:"description"`
	TreatmentDate time.Time `json:"treatment_date"`
	Notes         string    `json:"notes"`
}

type petResponse struct {
	ID           int64                  `json:"id"`
	Name         string                 `json:"name"`
	Species      string                 `json:"species"`
	Breed        string                 `json:"breed"`
	Sex          string                 `json:"sex"`
	Color        string                 `json:"color"`
	DOB          *time.Time             `json:"dob"`
	MedicalNotes string                 `json:"medical_notes"`
	OwnerID      int64                  `json:"owner_id"`
	Treatments   []petTreatmentResponse `json:"treatments"`
}

// createPetHandler godoc
// @Summary Alta de mascota
// @Description Crea la mascota y, si viene "treatments", las filas pet_treatments en la misma transacción. Si alguna falla no se guarda nada.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "name, species y owner_id obligatorios; dob ISO-8601"
// @Success 201 {object} petResponse
// @Failure 400 {object} render.ErrorResponse
// @Router /api/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		dob, err := payload.OptionalTime(req.DOB)
		if err != nil {
			render.BadRequest(w, "dob must be ISO-8601")
			return
		}

		treatments, err := toTreatmentInputs(req.Treatments)
		if err != nil {
			render.BadRequest(w, err.Error())
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:         req.Name,
			Species:      req.Species,
			Breed:        req.Breed,
			Sex:          req.Sex,
			Color:        req.Color,
			DOB:          dob,
			MedicalNotes: req.MedicalNotes,
			OwnerID:      req.OwnerID.Int64(),
			Treatments:   treatments,
		})
		if err != nil {
			render.Error(w, r, err)
			return
		}

		render.JSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Filtros por igualdad exacta. Parámetros desconocidos se ignoran; owner_id no numérico = sin filtro.
// @Tags pets
// @Produce json
// @Param species query string false "Especie"
// @Param breed query string false "Raza"
// @Param sex query string false "Sexo"
// @Param owner_id query int false "ID del owner"
// @Success 200 {array} petResponse
// @Failure 500 {object} render.ErrorResponse
// @Router /api/pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), parseListFilter(r))
		if err != nil {
			render.Error(w, r, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		render.JSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Perfil de mascota
// @Tags pets
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} render.ErrorResponse
// @Router /api/pets/{id} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := payload.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			render.Error(w, r, apperr.NotFound("Pet"))
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota (parcial)
// @Description Solo cambia lo enviado. "dob": null limpia la fecha. Si viene "treatments" (aunque sea [] o null) reemplaza el set completo.
// @Tags pets
// @Accept json
// @Produce json
// @Param id path int true "ID de la mascota"
// @Param payload body createPetRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} render.ErrorResponse
// @Failure 404 {object} render.ErrorResponse
// @Router /api/pets/{id} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := payload.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			render.Error(w, r, apperr.NotFound("Pet"))
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		// Primero a mapa para saber qué claves vinieron (dob: null, treatments: []).
		raw, err := payload.Fields(body)
		if err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		var req updatePetRequest
		if err := json.Unmarshal(body, &req); err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		in := UpdateInput{
			Name:         req.Name,
			Species:      req.Species,
			Breed:        req.Breed,
			Sex:          req.Sex,
			Color:        req.Color,
			MedicalNotes: req.MedicalNotes,
			OwnerID:      req.OwnerID.Int64(),
		}

		if f := payload.Lookup(raw, "dob"); f.Present {
			in.DOB.Present = true
			if !f.IsNull() {
				var s string
				if err := json.Unmarshal(f.Raw, &s); err != nil {
					render.BadRequest(w, "dob must be ISO-8601 or null")
					return
				}
				dob, err := payload.OptionalTime(&s)
				if err != nil {
					render.BadRequest(w, "dob must be ISO-8601 or null")
					return
				}
				in.DOB.Value = dob
			}
		}

		if f := payload.Lookup(raw, "treatments"); f.Present {
			var reqs []treatmentLinkRequest
			if !f.IsNull() {
				if err := json.Unmarshal(f.Raw, &reqs); err != nil {
					render.BadRequest(w, "treatments must be an array")
					return
				}
			}
			treatments, err := toTreatmentInputs(reqs)
			if err != nil {
				render.BadRequest(w, err.Error())
				return
			}
			in.Treatments = &treatments
		}

		updated, err := svc.Update(r.Context(), id, in)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, toPetResponse(updated))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra también sus turnos, facturas y filas pet_treatments (los tratamientos quedan).
// @Tags pets
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} render.MessageResponse
// @Failure 404 {object} render.ErrorResponse
// @Router /api/pets/{id} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := payload.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			render.Error(w, r, apperr.NotFound("Pet"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			render.Error(w, r, err)
			return
		}
		render.Message(w, http.StatusOK, "Pet deleted")
	}
}

func parseListFilter(r *http.Request) ListFilter {
	q := r.URL.Query()

	filter := ListFilter{
		Species: q.Get("species"),
		Breed:   q.Get("breed"),
		Sex:     q.Get("sex"),
	}

	// owner_id inválido = sin filtro (no 400)
	if v := strings.TrimSpace(q.Get("owner_id")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.OwnerID = &n
		}
	}

	return filter
}

func toTreatmentInputs(in []treatmentLinkRequest) ([]TreatmentInput, error) {
	out := make([]TreatmentInput, 0, len(in))
	for _, t := range in {
		date, err := payload.OptionalTime(t.TreatmentDate)
		if err != nil {
			return nil, apperr.Validation("treatment_date must be ISO-8601")
		}
		out = append(out, TreatmentInput{
			TreatmentID:   t.TreatmentID.Int64(),
			TreatmentDate: date,
			Notes:         t.Notes,
		})
	}
	return out, nil
}

func toPetResponse(p Pet) petResponse {
	treatments := make([]petTreatmentResponse, 0, len(p.Treatments))
	for _, t := range p.Treatments {
		treatments = append(treatments, petTreatmentResponse{
			TreatmentID:   t.TreatmentID,
			Description:   t.Description,
			TreatmentDate: t.TreatmentDate,
			Notes:         t.Notes,
		})
	}

	return petResponse{
		ID:           p.ID,
		Name:         p.Name,
		Species:      p.Species,
		Breed:        p.Breed,
		Sex:          p.Sex,
		Color:        p.Color,
		DOB:          p.DOB,
		MedicalNotes: p.MedicalNotes,
		OwnerID:      p.OwnerID,
		Treatments:   treatments,
	}
}
