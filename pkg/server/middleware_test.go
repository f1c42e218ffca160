package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func testServer() *Server {
	cfg := NewConfig()
	return &Server{
		config:      cfg,
		rateLimiter: rate.NewLimiter(cfg.RateLimit, cfg.RateLimitBurst),
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	s := testServer()

	var seen string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(contextKeyRequestID).(string)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("generates id when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		got := w.Header().Get("X-Request-Id")
		if got == "" {
			t.Fatal("expected a generated request id")
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Fatalf("generated id %q is not a uuid: %v", got, err)
		}
		if seen != got {
			t.Fatalf("context id %q does not match header %q", seen, got)
		}
	})

	t.Run("keeps valid provided id", func(t *testing.T) {
		provided := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
		req.Header.Set("X-Request-Id", provided)
		w := httptest.NewRecorder()
		handler(w, req)

		if got := w.Header().Get("X-Request-Id"); got != provided {
			t.Fatalf("X-Request-Id = %q, want %q", got, provided)
		}
	})

	t.Run("replaces invalid provided id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
		req.Header.Set("X-Request-Id", "not-a-uuid")
		w := httptest.NewRecorder()
		handler(w, req)

		got := w.Header().Get("X-Request-Id")
		if got == "not-a-uuid" {
			t.Fatal("invalid request id must be replaced")
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Fatalf("replacement id %q is not a uuid: %v", got, err)
		}
	})
}

func TestVersionMiddleware(t *testing.T) {
	s := testServer()

	var seen string
	handler := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(contextKeyAPIVersion).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
	req.Header.Set("Accept", "application/vnd.cookbook.v1+json")
	w := httptest.NewRecorder()
	handler(w, req)

	if got := w.Header().Get("X-API-Version"); got != "v1" {
		t.Fatalf("X-API-Version = %q, want v1", got)
	}
	if seen != "v1" {
		t.Fatalf("context version = %q, want v1", seen)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows within limit", func(t *testing.T) {
		s := testServer()
		called := false
		handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		if !called {
			t.Fatal("handler must be called when under the limit")
		}
		if w.Header().Get("X-RateLimit-Limit") == "" {
			t.Fatal("expected X-RateLimit-Limit header")
		}
		if w.Header().Get("X-RateLimit-Remaining") == "" {
			t.Fatal("expected X-RateLimit-Remaining header")
		}
	})

	t.Run("rejects over limit", func(t *testing.T) {
		s := testServer()
		s.rateLimiter = rate.NewLimiter(0, 0)
		handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be called when rate limited")
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
		w := httptest.NewRecorder()
		handler(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusTooManyRequests)
		}
		if w.Header().Get("Retry-After") != "1" {
			t.Fatalf("Retry-After = %q, want 1", w.Header().Get("Retry-After"))
		}
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := testServer()
	handler := s.panicRecoveryMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestLoggingMiddlewarePassesThrough(t *testing.T) {
	s := testServer()
	handler := s.loggingMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
}

func TestMiddlewareChain(t *testing.T) {
	s := testServer()
	handler := s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/recipes", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatal("chain must set X-Request-Id")
	}
	if w.Header().Get("X-API-Version") != DefaultAPIVersion {
		t.Fatal("chain must set X-API-Version")
	}
	if w.Header().Get("X-RateLimit-Limit") == "" {
		t.Fatal("chain must set rate limit headers")
	}
}
