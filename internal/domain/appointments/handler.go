package appointments

import (
	"encoding/json"
	"net/http"
	"time"

	"vet-clinic/internal/platform/payload"
	"vet-clinic/internal/platform/render"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Get("/", listAppointmentsHandler(svc))
		ar.Post("/", createAppointmentHandler(svc))
	})
}

type createAppointmentRequest struct {
	Date    *string     `json:"date"` // ISO-8601
	Reason  string      `json:"reason"`
	PetID   *payload.ID `json:"pet_id"`
	StaffID *payload.ID `json:"staff_id"`
}

type appointmentResponse struct {
	ID      int64      `json:"id"`
	Date    *time.Time `json:"date"`
	Reason  string     `json:"reason"`
	PetID   *int64     `json:"pet_id"`
	StaffID *int64     `json:"staff_id"`
}

// listAppointmentsHandler godoc
// @Summary Listar turnos
// @Tags appointments
// @Produce json
// @Success 200 {array} appointmentResponse
// @Failure 500 {object} render.ErrorResponse
// @Router /api/appointments [get]
func listAppointmentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			render.Error(w, r, err)
			return
		}

		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAppointmentResponse(a))
		}
		render.JSON(w, http.StatusOK, out)
	}
}

// createAppointmentHandler godoc
// @Summary Alta de turno
// @Description pet_id y staff_id opcionales; si vienen deben existir.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body createAppointmentRequest true "Datos del turno"
// @Success 201 {object} appointmentResponse
// @Failure 400 {object} render.ErrorResponse
// @Router /api/appointments [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		date, err := payload.OptionalTime(req.Date)
		if err != nil {
			render.BadRequest(w, "date must be ISO-8601")
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Date:    date,
			Reason:  req.Reason,
			PetID:   req.PetID.Int64(),
			StaffID: req.StaffID.Int64(),
		})
		if err != nil {
			render.Error(w, r, err)
			return
		}

		render.JSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:      a.ID,
		Date:    a.Date,
		Reason:  a.Reason,
		PetID:   a.PetID,
		StaffID: a.StaffID,
	}
}
