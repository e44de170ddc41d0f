// Package metrics defines the collector interface for terminal telemetry.
// Implementations can export to various backends; the prometheus
// subpackage is the production one and the memory subpackage backs tests.
package metrics

import (
	"time"

	"atm-sim/pkg/money"
)

// Collector receives terminal events as they happen.
type Collector interface {
	// RecordAuthentication records one authentication attempt.
	RecordAuthentication(success bool)

	// RecordSession records a completed session and its duration.
	RecordSession(duration time.Duration)

	// RecordTransaction records one executed transaction by kind and outcome.
	RecordTransaction(kind, outcome string, duration time.Duration)

	// RecordCashDispensed records cash leaving the dispenser.
	RecordCashDispensed(amount money.Cents)

	// RecordDepositPending records a deposit posted to a total balance,
	// awaiting clearance.
	RecordDepositPending(amount money.Cents)

	// RecordBillCount records the dispenser's current bill inventory.
	RecordBillCount(bills int)
}

// Transaction outcome labels.
const (
	OutcomeCompleted = "completed"
	OutcomeCanceled  = "canceled"
	OutcomeFailed    = "failed"
)

// NoOpCollector is a no-op implementation of Collector. It is the default
// when metrics are not wired.
type NoOpCollector struct{}

// RecordAuthentication does nothing.
func (NoOpCollector) RecordAuthentication(success bool) {}

// RecordSession does nothing.
func (NoOpCollector) RecordSession(duration time.Duration) {}

// RecordTransaction does nothing.
func (NoOpCollector) RecordTransaction(kind, outcome string, duration time.Duration) {}

// RecordCashDispensed does nothing.
func (NoOpCollector) RecordCashDispensed(amount money.Cents) {}

// RecordDepositPending does nothing.
func (NoOpCollector) RecordDepositPending(amount money.Cents) {}

// RecordBillCount does nothing.
func (NoOpCollector) RecordBillCount(bills int) {}
