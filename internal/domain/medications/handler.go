package medications

import (
	"encoding/json"
	"net/http"

	"vet-clinic/internal/platform/payload"
	"vet-clinic/internal/platform/render"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc))
		mr.Post("/", createMedicationHandler(svc))
	})
}

type createMedicationRequest struct {
	Name        string      `json:"name"`
	Dosage      string      `json:"dosage"`
	Frequency   string      `json:"frequency"`
	TreatmentID *payload.ID `json:"treatment_id"`
}

// Response es la forma JSON de una medicación; treatments la reutiliza.
type Response struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Dosage      string `json:"dosage"`
	Frequency   string `json:"frequency"`
	TreatmentID *int64 `json:"treatment_id"`
}

// listMedicationsHandler godoc
// @Summary Listar medicaciones
// @Tags medications
// @Produce json
// @Success 200 {array} medications.Response
// @Failure 500 {object} render.ErrorResponse
// @Router /api/medications [get]
func listMedicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			render.Error(w, r, err)
			return
		}

		out := make([]Response, 0, len(items))
		for _, m := range items {
			out = append(out, ToResponse(m))
		}
		render.JSON(w, http.StatusOK, out)
	}
}

// createMedicationHandler godoc
// @Summary Alta de medicación
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body createMedicationRequest true "Datos de la medicación"
// @Success 201 {object} medications.Response
// @Failure 400 {object} render.ErrorResponse
// @Router /api/medications [post]
func createMedicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		m, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Dosage:      req.Dosage,
			Frequency:   req.Frequency,
			TreatmentID: req.TreatmentID.Int64(),
		})
		if err != nil {
			render.Error(w, r, err)
			return
		}

		render.JSON(w, http.StatusCreated, ToResponse(m))
	}
}

func ToResponse(m Medication) Response {
	return Response{
		ID:          m.ID,
		Name:        m.Name,
		Dosage:      m.Dosage,
		Frequency:   m.Frequency,
		TreatmentID: m.TreatmentID,
	}
}
