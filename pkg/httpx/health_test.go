package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/grocerylist/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

type healthBody struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

func probe(t *testing.T, checks httpx.HealthChecks) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(checks).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	var body healthBody
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr, body
}

func TestHealthHandler_AllHealthy(t *testing.T) {
	rr, body := probe(t, httpx.HealthChecks{
		"database":  &stubChecker{},
		"redis":     &stubChecker{},
		"event_bus": &stubChecker{},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if body.Status != "ok" {
		t.Errorf("status: got %q, want %q", body.Status, "ok")
	}
	if len(body.Components) != 3 {
		t.Errorf("expected 3 components, got %+v", body.Components)
	}
}

func TestHealthHandler_OneDown(t *testing.T) {
	for _, down := range []string{"database", "redis", "event_bus"} {
		t.Run(down, func(t *testing.T) {
			checks := httpx.HealthChecks{
				"database":  &stubChecker{},
				"redis":     &stubChecker{},
				"event_bus": &stubChecker{},
			}
			checks[down] = &stubChecker{err: errors.New("conn refused")}

			rr, body := probe(t, checks)

			if rr.Code != http.StatusServiceUnavailable {
				t.Fatalf("expected 503, got %d", rr.Code)
			}
			if body.Status != "degraded" || body.Components[down] != "unreachable" {
				t.Errorf("unexpected response: %+v", body)
			}
			for name, state := range body.Components {
				if name != down && state != "ok" {
					t.Errorf("%s: got %q, want ok", name, state)
				}
			}
		})
	}
}

func TestHealthHandler_NilCheckersSkipped(t *testing.T) {
	rr, body := probe(t, httpx.HealthChecks{
		"database": nil,
		"redis":    nil,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(body.Components) != 0 {
		t.Errorf("expected no components, got %+v", body.Components)
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	rr, _ := probe(t, httpx.HealthChecks{"database": &stubChecker{}})

	ct := rr.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json; charset=utf-8")
	}
}
