package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"atm-sim/pkg/admin"
	"atm-sim/pkg/config"
	"atm-sim/pkg/hardware"
	"atm-sim/pkg/journal"
	"atm-sim/pkg/ledger"
	"atm-sim/pkg/logging"
	prommetrics "atm-sim/pkg/metrics/prometheus"
	"atm-sim/pkg/session"
	"atm-sim/pkg/terminal"
	"atm-sim/pkg/transaction"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	logging.SetGlobal(logger)

	logger.Info("Starting ATM...")

	// Account ledger seeded from configuration.
	accounts, err := cfg.SeedAccounts()
	if err != nil {
		logger.Fatal("Failed to seed accounts", zap.Error(err))
	}
	book, err := ledger.New(accounts...)
	if err != nil {
		logger.Fatal("Failed to build ledger", zap.Error(err))
	}
	logger.Info("Ledger initialized", zap.Int("accounts", len(accounts)))

	// Cash dispenser and deposit slot, both behind circuit breakers so
	// a faulting device takes itself out of service instead of failing
	// every customer.
	breakerConfig := hardware.DefaultCircuitBreakerConfig()
	dispenser := hardware.NewResilientDispenser(hardware.NewCashDispenser(cfg.Dispenser.Bills), breakerConfig)
	slot := hardware.NewResilientSlot(hardware.NewEnvelopeSlot(), breakerConfig)
	logger.Info("Dispenser stocked", zap.Int("bills", cfg.Dispenser.Bills))

	// Prometheus metrics on a private registry, served by the admin API.
	collector := prommetrics.New("atm")
	registry := prometheus.NewRegistry()
	registry.MustRegister(collector)

	// Audit journal, append only.
	var jnl *journal.Journal
	if cfg.Journal.Path != "" {
		jnl, err = journal.Open(cfg.Journal.Path)
		if err != nil {
			logger.Fatal("Failed to open journal", zap.Error(err))
		}
		defer jnl.Close()
		logger.Info("Journal opened", zap.String("path", cfg.Journal.Path))
	}

	// Customer-facing terminal on stdin/stdout.
	term := terminal.NewConsole(os.Stdin, os.Stdout)

	engine, err := transaction.NewEngine(transaction.Config{
		Ledger:    book,
		Dispenser: dispenser,
		Slot:      slot,
		Terminal:  term,
		Journal:   jnl,
		Metrics:   collector,
		Logger:    logger.Named("transaction"),
	})
	if err != nil {
		logger.Fatal("Failed to build transaction engine", zap.Error(err))
	}

	controller, err := session.NewController(session.Config{
		Ledger:   book,
		Engine:   engine,
		Terminal: term,
		Metrics:  collector,
		Logger:   logger.Named("session"),
	})
	if err != nil {
		logger.Fatal("Failed to build session controller", zap.Error(err))
	}

	adminServer, err := admin.NewServer(book, dispenser, registry, cfg.Admin)
	if err != nil {
		logger.Fatal("Failed to build admin server", zap.Error(err))
	}
	adminServer.Start()
	logger.Info("Admin API listening", zap.String("address", cfg.Admin.Address))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Serve customers until stdin closes or a signal arrives.
	done := make(chan error, 1)
	go func() {
		done <- controller.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil && err != context.Canceled {
			logger.Error("Session loop failed", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := adminServer.Stop(shutdownCtx); err != nil {
		logger.Error("Admin server shutdown error", zap.Error(err))
	}

	logger.Info("ATM stopped")
}
