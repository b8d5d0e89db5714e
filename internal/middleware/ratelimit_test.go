package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimit(t *testing.T) {
	handler := RateLimit(t.Context(), 1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/sign-in", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	for i := range 2 {
		if rr := do("10.0.0.1:1234"); rr.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rr.Code)
		}
	}

	rr := do("10.0.0.1:5678")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}

	if rr := do("10.0.0.2:1234"); rr.Code != http.StatusOK {
		t.Errorf("other client: status = %d, want 200", rr.Code)
	}
}

func TestIPRateLimiterEvict(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	now := time.Now()
	rl.reserve("10.0.0.1", now.Add(-2*visitorTTL))
	rl.reserve("10.0.0.2", now)

	rl.evict(now)

	if _, ok := rl.visitors["10.0.0.1"]; ok {
		t.Error("idle visitor was not evicted")
	}
	if _, ok := rl.visitors["10.0.0.2"]; !ok {
		t.Error("active visitor was evicted")
	}
}
