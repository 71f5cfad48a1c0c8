package web

import (
	"encoding/json"
	"net/http"
	"time"

	"receivables/internal/app"
	"receivables/internal/core"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type recordSalePayload struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	ClientName  string          `json:"client_name"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Product     string          `json:"product"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	NetRevenue  decimal.Decimal `json:"net_revenue"`
	HasTax      bool            `json:"has_tax"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	IsPaid      bool            `json:"is_paid"`
	Delivery    string          `json:"delivery_state"`
}

func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	var payload recordSalePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		writeError(w, r, "date must be YYYY-MM-DD", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	item, err := h.svc.RecordSale(r.Context(), app.RecordSaleRequest{
		CompanyCode: h.companyCode(r),
		ID:          payload.ID,
		OrderID:     payload.OrderID,
		OrderNumber: payload.OrderNumber,
		ClientName:  payload.ClientName,
		Date:        date,
		Product:     payload.Product,
		Quantity:    payload.Quantity,
		UnitPrice:   payload.UnitPrice,
		UnitCost:    payload.UnitCost,
		NetRevenue:  payload.NetRevenue,
		HasTax:      payload.HasTax,
		TaxRate:     payload.TaxRate,
		IsPaid:      payload.IsPaid,
		Delivery:    core.DeliveryState(payload.Delivery),
	})
	if err != nil {
		if isNotFound(err) {
			h.serviceError(w, r, err)
			return
		}
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, item)
}

type markPaidPayload struct {
	Paid *bool `json:"paid"`
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	// Body is optional: an empty body means "mark paid".
	paid := true
	var payload markPaidPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err == nil && payload.Paid != nil {
		paid = *payload.Paid
	}

	if err := h.svc.MarkItemPaid(r.Context(), h.companyCode(r), chi.URLParam(r, "id"), paid); err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"id": chi.URLParam(r, "id"), "paid": paid})
}
