// Package admin exposes a small HTTP surface for operators: health,
// machine status and Prometheus metrics. It is never shown to the
// card holder.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"atm-sim/pkg/hardware"
	"atm-sim/pkg/ledger"
	"atm-sim/pkg/logging"
	"atm-sim/pkg/money"
)

// Config holds configuration for the admin server.
type Config struct {
	// Address to listen on (e.g., ":8080")
	Address string `yaml:"address"`

	// ReadTimeout for HTTP requests
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout for HTTP responses
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Address:      ":8080",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Address == "" {
		return errors.New("admin: address is required")
	}
	return nil
}

// Server provides the operator HTTP endpoints.
type Server struct {
	ledger    *ledger.Ledger
	dispenser hardware.Dispenser
	server    *http.Server
	logger    *logging.Logger
	started   time.Time
}

// NewServer creates an admin server over the machine's ledger and
// dispenser. gatherer feeds /metrics; pass the registry the metrics
// collector is registered with, or nil to omit the endpoint.
func NewServer(l *ledger.Ledger, d hardware.Dispenser, gatherer prometheus.Gatherer, config Config) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if l == nil {
		return nil, errors.New("admin: ledger is required")
	}
	if d == nil {
		return nil, errors.New("admin: dispenser is required")
	}

	s := &Server{
		ledger:    l,
		dispenser: d,
		logger:    logging.Global().Named("admin"),
		started:   time.Now(),
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	s.server = &http.Server{
		Addr:         config.Address,
		Handler:      r,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}

	return s, nil
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("admin server error", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleHealth returns a simple health check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// handleStatus returns machine status: uptime, cash inventory and the
// number of accounts on file.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	bills := s.dispenser.Remaining()
	cash := money.FromDollars(int64(bills) * hardware.BillDenomination)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "running",
		"timestamp":       time.Now().Unix(),
		"uptime":          time.Since(s.started).String(),
		"bills_remaining": bills,
		"cash_remaining":  cash.Format(),
		"accounts":        len(s.ledger.AccountNumbers()),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
