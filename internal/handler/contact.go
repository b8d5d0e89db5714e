package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/service"
)

type ContactHandler struct {
	service *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// HandleCreate handles POST /campaigns/{id}/contacts requests.
func (h *ContactHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.ContactEnvelope
	if !decodeJSON(w, r, &req) {
		return
	}

	contact, err := h.service.Create(r.Context(), chi.URLParam(r, "id"), req.Contact)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]model.Contact{"contact": contact})
}

// HandleGet handles GET /campaigns/{id}/contacts/{contactId} requests.
func (h *ContactHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	contact, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "contactId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]model.ContactWithCampaign{"contacts": contact})
}
