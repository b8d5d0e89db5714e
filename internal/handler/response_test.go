package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/donatehub/donatehub-go/internal/model"
	"github.com/donatehub/donatehub-go/internal/service"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &service.NotFoundError{Resource: "campaign", ID: "x"}, http.StatusNotFound},
		{"not owner", &service.AuthorizationError{RequesterID: "a", OwnerID: "b"}, http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"validation", &service.ValidationError{Fields: []model.FieldError{{Field: "name", Message: "is required"}}}, http.StatusUnprocessableEntity},
		{"email taken", service.ErrEmailTaken, http.StatusConflict},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}

			var body errorBody
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if body.Error == "" {
				t.Error("empty error message")
			}
			if tt.want == http.StatusInternalServerError && body.Error != "internal server error" {
				t.Errorf("internal error leaked detail: %q", body.Error)
			}
		})
	}
}

func TestAuthedWithoutRequester(t *testing.T) {
	called := false
	h := authed(func(w http.ResponseWriter, r *http.Request, requester model.Requester) {
		called = true
	})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if called {
		t.Error("handler ran without a requester")
	}
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
