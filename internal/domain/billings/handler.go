package billings

import (
	"encoding/json"
	"net/http"
	"time"

	"vet-clinic/internal/platform/apperr"
	"vet-clinic/internal/platform/payload"
	"vet-clinic/internal/platform/render"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/billings", func(br chi.Router) {
		br.Get("/", listBillingsHandler(svc))
		br.Post("/", createBillingHandler(svc))

		br.Patch("/{id}", updateBillingHandler(svc))
		br.Delete("/{id}", deleteBillingHandler(svc))
	})
}

type createBillingRequest struct {
	PetID       *payload.ID      `json:"pet_id"`
	Date        *string          `json:"date"` // ISO-8601
	Amount      *decimal.Decimal `json:"amount" swaggertype:"number"`
	Description string           `json:"description"`
	Paid        bool             `json:"paid"`
}

type updateBillingRequest struct {
	Paid *bool `json:"paid"`
}

type billingResponse struct {
	ID          int64      `json:"id"`
	Date        *time.Time `json:"date"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Paid        bool       `json:"paid"`
	PetID       int64      `json:"pet_id"`
}

// listBillingsHandler godoc
// @Summary Listar facturas
// @Tags billings
// @Produce json
// @Success 200 {array} billingResponse
// @Failure 500 {object} render.ErrorResponse
// @Router /api/billings [get]
func listBillingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			render.Error(w, r, err)
			return
		}

		out := make([]billingResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBillingResponse(b))
		}
		render.JSON(w, http.StatusOK, out)
	}
}

// createBillingHandler godoc
// @Summary Alta de factura
// @Description pet_id, amount (>= 0) y description obligatorios. paid por defecto false.
// @Tags billings
// @Accept json
// @Produce json
// @Param payload body createBillingRequest true "Datos de la factura"
// @Success 201 {object} billingResponse
// @Failure 400 {object} render.ErrorResponse
// @Router /api/billings [post]
func createBillingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBillingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		date, err := payload.OptionalTime(req.Date)
		if err != nil {
			render.BadRequest(w, "date must be ISO-8601")
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			PetID:       req.PetID.Int64(),
			Date:        date,
			Amount:      req.Amount,
			Description: req.Description,
			Paid:        req.Paid,
		})
		if err != nil {
			render.Error(w, r, err)
			return
		}

		render.JSON(w, http.StatusCreated, toBillingResponse(b))
	}
}

// updateBillingHandler godoc
// @Summary Marcar factura como pagada / impaga
// @Description Solo se modifica "paid"; el resto de campos se ignora.
// @Tags billings
// @Accept json
// @Produce json
// @Param id path int true "ID de la factura"
// @Param payload body updateBillingRequest true "paid"
// @Success 200 {object} billingResponse
// @Failure 400 {object} render.ErrorResponse
// @Failure 404 {object} render.ErrorResponse
// @Router /api/billings/{id} [patch]
func updateBillingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := payload.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			render.Error(w, r, apperr.NotFound("Billing"))
			return
		}

		var req updateBillingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.BadRequest(w, "invalid json")
			return
		}

		b, err := svc.SetPaid(r.Context(), id, req.Paid)
		if err != nil {
			render.Error(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, toBillingResponse(b))
	}
}

// deleteBillingHandler godoc
// @Summary Borrar factura
// @Tags billings
// @Produce json
// @Param id path int true "ID de la factura"
// @Success 200 {object} render.MessageResponse
// @Failure 404 {object} render.ErrorResponse
// @Router /api/billings/{id} [delete]
func deleteBillingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := payload.ParseID(chi.URLParam(r, "id"))
		if err != nil {
			render.Error(w, r, apperr.NotFound("Billing"))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			render.Error(w, r, err)
			return
		}
		render.Message(w, http.StatusOK, "Billing deleted")
	}
}

func toBillingResponse(b Billing) billingResponse {
	return billingResponse{
		ID:          b.ID,
		Date:        b.Date,
		Amount:      b.Amount.InexactFloat64(),
		Description: b.Description,
		Paid:        b.Paid,
		PetID:       b.PetID,
	}
}
