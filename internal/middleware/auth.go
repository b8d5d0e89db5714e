package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/service"
)

type contextKey string

const requesterKey contextKey = "requester"

// Authenticator resolves a bearer token to the user it belongs to. Tokens it
// does not accept yield service.ErrUnauthenticated.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Requester, error)
}

// BearerAuth returns middleware that rejects requests without a valid Bearer
// token and stores the resolved requester in the request context.
func BearerAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			requester, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}
				slog.ErrorContext(r.Context(), "authenticate request",
					"error", err, "request_id", chimw.GetReqID(r.Context()))
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), requesterKey, requester)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequesterFromContext returns the requester stored by BearerAuth.
func RequesterFromContext(ctx context.Context) (model.Requester, bool) {
	requester, ok := ctx.Value(requesterKey).(model.Requester)
	return requester, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
