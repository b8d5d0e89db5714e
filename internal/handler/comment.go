package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/service"
)

type CommentHandler struct {
	service *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{service: svc}
}

// HandleList handles GET /campaigns/{id}/comments requests.
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListForCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]model.CommentWithOwner{"comments": comments})
}

// HandleGet handles GET /campaigns/{id}/comments/{commentId} requests.
func (h *CommentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	comment, err := h.service.Get(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "commentId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]model.CommentWithCampaign{"comments": comment})
}

// HandleCreate handles POST /campaigns/{id}/comments requests.
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request, requester model.Requester) {
	var req model.CommentEnvelope
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.service.Create(r.Context(), requester, chi.URLParam(r, "id"), req.Comment)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]model.Comment{"comment": comment})
}

// HandleUpdate handles PATCH /comments/{id} requests.
func (h *CommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request, requester model.Requester) {
	var req model.CommentEnvelope
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Update(r.Context(), requester, chi.URLParam(r, "id"), req.Comment); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /campaigns/{id}/comments/{commentId} requests.
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request, requester model.Requester) {
	if err := h.service.Delete(r.Context(), requester, chi.URLParam(r, "id"), chi.URLParam(r, "commentId")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
