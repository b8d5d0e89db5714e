package handler

import (
	"net/http"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/service"
)

// AuthHandler handles HTTP requests for accounts and sessions.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleSignUp handles POST /sign-up requests.
func (h *AuthHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsEnvelope
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.SignUp(r.Context(), req.Credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]model.UserResponse{"user": user})
}

// HandleSignIn handles POST /sign-in requests.
func (h *AuthHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsEnvelope
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.SignIn(r.Context(), req.Credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]model.UserResponse{"user": user})
}

// HandleSignOut handles DELETE /sign-out requests.
func (h *AuthHandler) HandleSignOut(w http.ResponseWriter, r *http.Request, requester model.Requester) {
	if err := h.service.SignOut(r.Context(), requester); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleChangePassword handles PATCH /change-password requests.
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request, requester model.Requester) {
	var req model.PasswordChangeEnvelope
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ChangePassword(r.Context(), requester, req.Passwords); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe handles GET /users/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request, requester model.Requester) {
	user, err := h.service.Me(r.Context(), requester)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]model.UserResponse{"user": user})
}
