package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/agaman/jobboard-api/internal/application/dashboard"
)

// DashboardHandler serves admin dashboard aggregates.
type DashboardHandler struct {
	svc dashboard.Service
}

func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Counts(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (h *DashboardHandler) CountsForAffiliate(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.CountsForAffiliate(r.Context(), chi.URLParam(r, "affiliateID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
