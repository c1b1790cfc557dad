package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func newTestRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "slack_unsend_test_total",
		Help: "Test counter.",
	})
	reg.MustRegister(counter)
	counter.Add(3)
	return reg
}

func TestMetricsHandler_ServeHTTP(t *testing.T) {
	h := NewMetricsHandler(newTestRegistry(t))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "slack_unsend_test_total 3") {
		t.Errorf("expected registry metrics in response, got %s", w.Body.String())
	}
}

func TestMetricsHandler_OnlyServesGivenRegistry(t *testing.T) {
	h := NewMetricsHandler(prometheus.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "go_goroutines") {
		t.Error("expected default registry metrics to be absent")
	}
}

func TestMetricsHandler_MethodNotAllowed(t *testing.T) {
	h := NewMetricsHandler(newTestRegistry(t))

	req := httptest.NewRequest(http.MethodPost, "/metrics", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}
