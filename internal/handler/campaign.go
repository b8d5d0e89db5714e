package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/service"
)

// CampaignHandler handles HTTP requests for campaigns and favorites.
type CampaignHandler struct {
	service *service.CampaignService
}

func NewCampaignHandler(svc *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{service: svc}
}

// HandleList handles GET /campaigns requests.
func (h *CampaignHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]model.Campaign{"campaigns": campaigns})
}

// HandleGet handles GET /campaigns/{id} requests.
func (h *CampaignHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]model.CampaignDetail{"campaign": campaign})
}

// HandleCreate handles POST /campaigns requests.
func (h *CampaignHandler) HandleCreate(w http.ResponseWriter, r *http.Request, requester model.Requester) {
	var req model.CampaignEnvelope
	if !decodeJSON(w, r, &req) {
		return
	}

	campaign, err := h.service.Create(r.Context(), requester, req.Campaign)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]model.Campaign{"campaign": campaign})
}

// HandleUpdate handles PATCH /campaigns/{id} requests.
func (h *CampaignHandler) HandleUpdate(w http.ResponseWriter, r *http.Request, requester model.Requester) {
	var req model.CampaignPatchEnvelope
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Update(r.Context(), requester, chi.URLParam(r, "id"), req.Campaign); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /campaigns/{id} requests.
func (h *CampaignHandler) HandleDelete(w http.ResponseWriter, r *http.Request, requester model.Requester) {
	if err := h.service.Delete(r.Context(), requester, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleFavorite handles POST /campaigns/favorites/{id} requests.
func (h *CampaignHandler) HandleFavorite(w http.ResponseWriter, r *http.Request, requester model.Requester) {
	if err := h.service.Favorite(r.Context(), requester, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUnfavorite handles PATCH /campaigns/favorites/{id} requests.
func (h *CampaignHandler) HandleUnfavorite(w http.ResponseWriter, r *http.Request, requester model.Requester) {
	if err := h.service.Unfavorite(r.Context(), requester, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
