package staff

import (
	"encoding/json"
	"net/http"

	"vet-clinic/internal/platform/apperr"
	"vet-clinic/internal/platform/payload"
	"vet-clinic/internal/platform/render"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/staff", func(sr chi.Router) {
		sr.Get("/", listStaffHandler(svc))
		sr.Post("/", createStaffHandler(svc))

		sr.Get("/{id}", getStaffHandler(svc))
		sr.Patch("/{id}", updateStaffHandler(svc))
		sr.Delete("/{id}", deleteStaffHandler(svc))
	})
}

// staffRequest sirve para POST y PATCH (punteros: nil = no enviado).
type staffRequest struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

type staffResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// listStaffHandler godoc
// @Summary Listar personal
// @Tags staff
// @Produce json
// @Success 200 {array} staffResponse
// @Failure 500 {object} render.ErrorResponse
// @Router /api/staff [get]
func listStaffHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			render.Error(w, r, err)
			return
		}

		out := make([]staffResponse, 0, len(items))
		for _, s := range items {
			out = append(out, toStaffResponse(s))
		}
		render.JSON(w, http.StatusOK, out)
	}
}

// createStaffHandler godoc
// @Summary Alta de personal
// @Description name, role, email y phone son obligatorios.
// @Tags staff
// @Accept json
// @Produce json
// @Param payload body staffRequest true "Datos del miembro"
// @Success 201 {object} staffResponse
// @Failure 400 {object} render.ErrorResponse
// @Router /api/staff [post]
func createStaffHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req staffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		s, err := svc.Create(r.Context(), CreateInput{
			Name:  deref(req.Name),
			Role:  deref(req.Role),
			Email: deref(req.Email),
			Phone: deref(req.Phone),
		})
		if err != nil {
			render.Error(w, r, err)
			return
		}

		render.JSON(w, http.StatusCreated, toStaffResponse(s))
	}
}

// getStaffHandler godoc
// @Summary Obtener miembro del personal
// @Tags staff
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} staffResponse
// @Failure 404 {object} render.ErrorResponse
// @Router /api/staff/{id} [get]
func getStaffHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := payload.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			render.Error(w, r, apperr.NotFound("Staff"))
			return
		}

		s, err := svc.GetByID(r.Context(), id)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, toStaffResponse(s))
	}
}

// updateStaffHandler godoc
// @Summary Actualizar personal (parcial)
// @Description Solo se modifican los campos enviados.
// @Tags staff
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param payload body staffRequest true "Campos a modificar"
// @Success 200 {object} staffResponse
// @Failure 400 {object} render.ErrorResponse
// @Failure 404 {object} render.ErrorResponse
// @Router /api/staff/{id} [patch]
func updateStaffHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := payload.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			render.Error(w, r, apperr.NotFound("Staff"))
			return
		}

		var req staffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		s, err := svc.Update(r.Context(), id, UpdateInput{
			Name:  req.Name,
			Role:  req.Role,
			Email: req.Email,
			Phone: req.Phone,
		})
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, toStaffResponse(s))
	}
}

// deleteStaffHandler godoc
// @Summary Borrar personal
// @Description Borra también sus turnos y tratamientos.
// @Tags staff
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} render.MessageResponse
// @Failure 404 {object} render.ErrorResponse
// @Router /api/staff/{id} [delete]
func deleteStaffHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := payload.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			render.Error(w, r, apperr.NotFound("Staff"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			render.Error(w, r, err)
			return
		}
		render.Message(w, http.StatusOK, "Staff deleted")
	}
}

func toStaffResponse(s Staff) staffResponse {
	return staffResponse{
		ID:    s.ID,
		Name:  s.Name,
		Role:  s.Role,
		Email: s.Email,
		Phone: s.Phone,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
