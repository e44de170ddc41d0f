package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"atm-sim/pkg/hardware"
	"atm-sim/pkg/ledger"
	prommetrics "atm-sim/pkg/metrics/prometheus"
)

func setupTestServer(t *testing.T) (*Server, *prometheus.Registry) {
	t.Helper()
	a, err := ledger.NewAccount(12345, 54321, 100000, 120000)
	if err != nil {
		t.Fatalf("NewAccount: %v", err)
	}
	l, err := ledger.New(a)
	if err != nil {
		t.Fatalf("ledger.New: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(prommetrics.New("atm"))

	server, err := NewServer(l, hardware.NewCashDispenser(500), registry, DefaultConfig())
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return server, registry
}

func TestServer_Health(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.NewDecoder(w.Body).Decode(&response)
	if response["status"] != "healthy" {
		t.Errorf("Expected status healthy, got %v", response["status"])
	}
}

func TestServer_Status(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.NewDecoder(w.Body).Decode(&response)

	if response["status"] != "running" {
		t.Errorf("Expected status running, got %v", response["status"])
	}
	if response["bills_remaining"] != float64(500) {
		t.Errorf("Expected 500 bills, got %v", response["bills_remaining"])
	}
	if response["cash_remaining"] != "$10,000.00" {
		t.Errorf("Expected $10,000.00 cash, got %v", response["cash_remaining"])
	}
	if response["accounts"] != float64(1) {
		t.Errorf("Expected 1 account, got %v", response["accounts"])
	}
}

func TestServer_Metrics(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "atm_") {
		t.Errorf("Expected atm metrics in exposition, got %q", w.Body.String())
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestServer_ConfigValidation(t *testing.T) {
	config := Config{}
	if err := config.Validate(); err == nil {
		t.Error("Expected error for empty address")
	}
}
