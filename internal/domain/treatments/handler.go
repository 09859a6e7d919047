package treatments

import (
	"encoding/json"
	"net/http"
	"time"

	"vet-clinic/internal/domain/medications"
	"vet-clinic/internal/platform/payload"
	"vet-clinic/internal/platform/render"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/treatments", func(tr chi.Router) {
		tr.Get("/", listTreatmentsHandler(svc))
		tr.Post("/", createTreatmentHandler(svc))
	})
}

type createTreatmentRequest struct {
	Date        *string     `json:"date"` // ISO-8601
	Description string      `json:"description"`
	StaffID     *payload.ID `json:"staff_id"`
}

type petRefResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type treatmentResponse struct {
	ID          int64                  `json:"id"`
	Date        *time.Time             `json:"date"`
	Description string                 `json:"description"`
	StaffID     *int64                 `json:"staff_id"`
	Medications []medications.Response `json:"medications"`
	Pets        []petRefResponse       `json:"pets"`
}

// listTreatmentsHandler godoc
// @Summary Listar tratamientos
// @Description Cada tratamiento incluye sus medicaciones y las mascotas asociadas (id, name).
// @Tags treatments
// @Produce json
// @Success 200 {array} treatmentResponse
// @Failure 500 {object} render.ErrorResponse
// @Router /api/treatments [get]
func listTreatmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			render.Error(w, r, err)
			return
		}

		out := make([]treatmentResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTreatmentResponse(t))
		}
		render.JSON(w, http.StatusOK, out)
	}
}

// createTreatmentHandler godoc
// @Summary Alta de tratamiento
// @Tags treatments
// @Accept json
// @Produce json
// @Param payload body createTreatmentRequest true "Datos del tratamiento"
// @Success 201 {object} treatmentResponse
// @Failure 400 {object} render.ErrorResponse
// @Router /api/treatments [post]
func createTreatmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTreatmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		date, err := payload.OptionalTime(req.Date)
		if err != nil {
			render.BadRequest(w, "date must be ISO-8601")
			return
		}

		t, err := svc.Create(r.Context(), CreateInput{
			Date:        date,
			Description: req.Description,
			StaffID:     req.StaffID.Int64(),
		})
		if err != nil {
			render.Error(w, r, err)
			return
		}

		render.JSON(w, http.StatusCreated, toTreatmentResponse(t))
	}
}

func toTreatmentResponse(t Treatment) treatmentResponse {
	meds := make([]medications.Response, 0, len(t.Medications))
	for _, m := range t.Medications {
		meds = append(meds, medications.ToResponse(m))
	}
	pets := make([]petRefResponse, 0, len(t.Pets))
	for _, p := range t.Pets {
		pets = append(pets, petRefResponse{ID: p.ID, Name: p.Name})
	}

	return treatmentResponse{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		StaffID:     t.StaffID,
		Medications: meds,
		Pets:        pets,
	}
}
