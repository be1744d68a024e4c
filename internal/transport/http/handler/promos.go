package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/agaman/jobboard-api/internal/application/promo"
	"github.com/agaman/jobboard-api/internal/domain"
	"github.com/agaman/jobboard-api/internal/pkg/validate"
)

// PromoHandler handles promo code management endpoints.
type PromoHandler struct {
	svc promo.Service
}

func NewPromoHandler(svc promo.Service) *PromoHandler { return &PromoHandler{svc: svc} }

func (h *PromoHandler) List(w http.ResponseWriter, r *http.Request) {
	promos, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promos)
}

func (h *PromoHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetByCode applies validity checks; used by checkout to price an order.
func (h *PromoHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PromoHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req domain.PromoInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PromoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.PromoInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete soft-deactivates by default; ?hard=true removes the row and
// ?active=true restores it.
func (h *PromoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	promoID := chi.URLParam(r, "id")
	if hard, _ := strconv.ParseBool(r.URL.Query().Get("hard")); hard {
		if err := h.svc.Delete(r.Context(), promoID); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageEnvelope{Message: "promo deleted"})
		return
	}
	active := false
	if v := r.URL.Query().Get("active"); v != "" {
		active, _ = strconv.ParseBool(v)
	}
	if err := h.svc.SetActive(r.Context(), promoID, active); err != nil {
		writeDomainError(w, err)
		return
	}
	msg := "promo deactivated"
	if active {
		msg = "promo restored"
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: msg})
}
