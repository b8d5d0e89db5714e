package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/donatehub/donatehub-go/internal/middleware"
	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

type errorBody struct {
	Error  string             `json:"error"`
	Fields []model.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) errorBody {
	return errorBody{Error: msg}
}

// decodeJSON reads a size-limited JSON body into dst. On failure it writes the
// 400 or 413 response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// writeError translates a service error into its HTTP response. Errors with
// no mapping are logged and reported as 500 without their detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotOwner),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
	case errors.Is(err, service.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimw.GetReqID(r.Context()),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

// requesterHandlerFunc is a handler for a route behind BearerAuth.
type requesterHandlerFunc func(w http.ResponseWriter, r *http.Request, requester model.Requester)

// authed passes the requester resolved by BearerAuth to fn as an argument.
func authed(fn requesterHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := middleware.RequesterFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
			return
		}
		fn(w, r, requester)
	}
}
