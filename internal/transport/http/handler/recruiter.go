package handler

import (
	"net/http"

	"github.com/agaman/jobboard-api/internal/application/recruiter"
	"github.com/go-chi/chi/v5"
)

// RecruiterHandler serves the recruiter read surface.
type RecruiterHandler struct {
	svc recruiter.Service
}

func NewRecruiterHandler(svc recruiter.Service) *RecruiterHandler {
	return &RecruiterHandler{svc: svc}
}

func (h *RecruiterHandler) JobSeekers(w http.ResponseWriter, r *http.Request) {
	seekers, err := h.svc.ListJobSeekers(r.Context(), chi.URLParam(r, "recruiterID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seekers)
}

func (h *RecruiterHandler) JobCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.JobCountsPerSeeker(r.Context(), chi.URLParam(r, "recruiterID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
