package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// dateWindow pulls the optional from/to bounds off the query string.
func dateWindow(r *http.Request) (fromDate, toDate string) {
	q := r.URL.Query()
	return q.Get("from"), q.Get("to")
}

// isNotFound reports whether a service error is a missing-record error rather
// than an infrastructure failure.
func isNotFound(err error) bool {
	return strings.Contains(err.Error(), "not found")
}

func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	if isNotFound(err) {
		writeError(w, r, err.Error(), "NOT_FOUND", http.StatusNotFound)
		return
	}
	writeError(w, r, err.Error(), "INTERNAL_ERROR", http.StatusInternalServerError)
}

func (h *Handler) clientLedger(w http.ResponseWriter, r *http.Request) {
	from, to := dateWindow(r)
	result, err := h.svc.GetClientLedger(r.Context(), h.companyCode(r), chi.URLParam(r, "code"), from, to)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) clientAging(w http.ResponseWriter, r *http.Request) {
	from, to := dateWindow(r)
	result, err := h.svc.GetAgingReport(r.Context(), h.companyCode(r), chi.URLParam(r, "code"), from, to)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

func (h *Handler) clientStatementCSV(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	from, to := dateWindow(r)
	out, err := h.svc.ExportClientStatement(r.Context(), h.companyCode(r), code, from, to)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "statement-"+code+".csv"))
	_, _ = w.Write(out)
}

func (h *Handler) receivablesSummary(w http.ResponseWriter, r *http.Request) {
	from, to := dateWindow(r)
	result, err := h.svc.GetReceivablesSummary(r.Context(), h.companyCode(r), from, to)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
