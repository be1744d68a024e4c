package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/agaman/jobboard-api/internal/application/affiliate"
	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/agaman/jobboard-api/internal/pkg/validate"
)

// AffiliateHandler handles affiliate management endpoints.
type AffiliateHandler struct {
	svc affiliate.Service
}

func NewAffiliateHandler(svc affiliate.Service) *AffiliateHandler {
	return &AffiliateHandler{svc: svc}
}

func (h *AffiliateHandler) List(w http.ResponseWriter, r *http.Request) {
	affiliates, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, affiliates)
}

func (h *AffiliateHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AffiliateHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAffiliateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *AffiliateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateAffiliateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Delete soft-deletes by default; ?active=true restores instead.
func (h *AffiliateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	active := false
	if v := r.URL.Query().Get("active"); v != "" {
		active, _ = strconv.ParseBool(v)
	}
	if err := h.svc.SetActive(r.Context(), chi.URLParam(r, "id"), active); err != nil {
		writeDomainError(w, err)
		return
	}
	msg := "affiliate deleted"
	if active {
		msg = "affiliate restored"
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: msg})
}

func (h *AffiliateHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password" validate:"required,min=8,max=72"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.UpdatePassword(r.Context(), chi.URLParam(r, "id"), req.Password); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "Password updated."})
}

// ValidateCode is public: the signup form checks a referral code before
// submitting registration.
func (h *AffiliateHandler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.ValidateCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"affiliate_id": a.AffiliateID,
		"name":         a.Name,
	})
}
