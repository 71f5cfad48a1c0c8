package web

import (
	"net/http"

	"receivables/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc            app.ApplicationService
	defaultCompany string
}

// NewHandler creates and wires the chi router with all routes.
// defaultCompany is used when a request carries no ?company= parameter.
func NewHandler(svc app.ApplicationService, allowedOrigins, defaultCompany string) http.Handler {
	h := &Handler{svc: svc, defaultCompany: defaultCompany}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)

	r.Get("/api/clients", h.listClients)
	r.Post("/api/clients", h.createClient)
	r.Get("/api/clients/{code}/ledger", h.clientLedger)
	r.Get("/api/clients/{code}/aging", h.clientAging)
	r.Get("/api/clients/{code}/statement.csv", h.clientStatementCSV)

	r.Get("/api/receivables/summary", h.receivablesSummary)

	r.Post("/api/sales", h.recordSale)
	r.Post("/api/sales/{id}/paid", h.markPaid)

	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// companyCode resolves the tenant for a request: explicit ?company= wins,
// otherwise the configured default.
func (h *Handler) companyCode(r *http.Request) string {
	if code := r.URL.Query().Get("company"); code != "" {
		return code
	}
	return h.defaultCompany
}
