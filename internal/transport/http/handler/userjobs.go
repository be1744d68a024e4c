package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/agaman/jobboard-api/internal/application/userjob"
	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/agaman/jobboard-api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// UserJobHandler handles tracked job applications.
type UserJobHandler struct {
	svc userjob.Service
}

func NewUserJobHandler(svc userjob.Service) *UserJobHandler { return &UserJobHandler{svc: svc} }

func (h *UserJobHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	uj, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, uj)
}

func (h *UserJobHandler) Get(w http.ResponseWriter, r *http.Request) {
	uj, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, uj)
}

func (h *UserJobHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)
	jobs, total, err := h.svc.List(r.Context(), r.URL.Query().Get("name"), page, perPage)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PaginatedEnvelope{
		MaxPage: maxPage(total, perPage), ActualPage: page, PerPage: perPage, Total: total, Data: jobs,
	})
}

func (h *UserJobHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.ListByUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (h *UserJobHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateUserJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	uj, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, uj)
}

// Delete soft-deletes by default; ?active=true restores instead.
func (h *UserJobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	active := false
	if v := r.URL.Query().Get("active"); v != "" {
		active, _ = strconv.ParseBool(v)
	}
	if err := h.svc.SetActive(r.Context(), chi.URLParam(r, "id"), active); err != nil {
		writeDomainError(w, err)
		return
	}
	msg := "user job deleted"
	if active {
		msg = "user job restored"
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: msg})
}

func (h *UserJobHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserJobIDs []string `json:"user_job_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.DeleteMany(r.Context(), req.UserJobIDs); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "user jobs deleted"})
}

// Exists reports whether the user already tracks the posting. Always 200 with
// a bare boolean; blank identifiers report false.
func (h *UserJobHandler) Exists(w http.ResponseWriter, r *http.Request) {
	ok, err := h.svc.Exists(r.Context(), r.URL.Query().Get("user_id"), r.URL.Query().Get("job_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ok)
}

func (h *UserJobHandler) Problem(w http.ResponseWriter, r *http.Request) {
	var req domain.UserJobProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.SetProblem(r.Context(), req); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "problem flag updated"})
}

func (h *UserJobHandler) ProblemList(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)
	jobs, total, err := h.svc.ListProblems(r.Context(), r.URL.Query().Get("name"), page, perPage)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PaginatedEnvelope{
		MaxPage: maxPage(total, perPage), ActualPage: page, PerPage: perPage, Total: total, Data: jobs,
	})
}

func (h *UserJobHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.CountsForUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (h *UserJobHandler) CountsByDates(w http.ResponseWriter, r *http.Request) {
	var req domain.UserJobsDateCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, err := h.svc.CountBetween(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (h *UserJobHandler) CountByAffiliate(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CountByAffiliate(r.Context(), chi.URLParam(r, "affiliateID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}
