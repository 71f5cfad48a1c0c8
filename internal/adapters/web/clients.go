package web

import (
	"encoding/json"
	"net/http"

	"receivables/internal/app"
)

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListClients(r.Context(), h.companyCode(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

func toCreateClientRequest(companyCode string, p createClientPayload) app.CreateClientRequest {
	return app.CreateClientRequest{
		CompanyCode: companyCode,
		Code:        p.Code,
		Name:        p.Name,
		LegalName:   p.LegalName,
		Email:       p.Email,
		Phone:       p.Phone,
	}
}

type createClientPayload struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	LegalName string `json:"legal_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var payload createClientPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, "invalid JSON body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	if payload.Code == "" || payload.Name == "" {
		writeError(w, r, "code and name are required", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	client, err := h.svc.CreateClient(r.Context(), toCreateClientRequest(h.companyCode(r), payload))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, client)
}
