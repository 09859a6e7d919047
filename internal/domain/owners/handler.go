package owners

import (
	"encoding/json"
	"net/http"

	"vet-clinic/internal/platform/render"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", listOwnersHandler(svc))
		or.Post("/", createOwnerHandler(svc))
	})
}

type createOwnerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ownerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// listOwnersHandler godoc
// @Summary Listar owners
// @Tags owners
// @Produce json
// @Success 200 {array} ownerResponse
// @Failure 500 {object} render.ErrorResponse
// @Router /api/owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			render.Error(w, r, err)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		render.JSON(w, http.StatusOK, out)
	}
}

// createOwnerHandler godoc
// @Summary Alta de owner
// @Description name, email y phone son obligatorios.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body createOwnerRequest true "Datos del owner"
// @Success 201 {object} ownerResponse
// @Failure 400 {object} render.ErrorResponse
// @Router /api/owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		})
		if err != nil {
			render.Error(w, r, err)
			return
		}

		render.JSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:    o.ID,
		Name:  o.Name,
		Email: o.Email,
		Phone: o.Phone,
	}
}
