// Package memory provides an in-memory metrics collector for tests.
package memory

import (
	"sync"
	"time"

	"atm-sim/pkg/money"
)

// Collector implements metrics.Collector by accumulating counts in memory.
type Collector struct {
	mu sync.Mutex

	AuthSuccesses int64
	AuthFailures  int64

	Sessions         int64
	SessionDurations []time.Duration

	// Transactions counts executions keyed by "kind/outcome".
	Transactions map[string]int64

	CashDispensed   money.Cents
	DepositsPending money.Cents
	Bills           int
}

// New creates an empty in-memory collector.
func New() *Collector {
	return &Collector{Transactions: make(map[string]int64)}
}

// RecordAuthentication counts one authentication attempt.
func (c *Collector) RecordAuthentication(success bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if success {
		c.AuthSuccesses++
	} else {
		c.AuthFailures++
	}
}

// RecordSession counts one completed session.
func (c *Collector) RecordSession(duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sessions++
	c.SessionDurations = append(c.SessionDurations, duration)
}

// RecordTransaction counts one executed transaction.
func (c *Collector) RecordTransaction(kind, outcome string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Transactions[kind+"/"+outcome]++
}

// RecordCashDispensed accumulates dispensed cash.
func (c *Collector) RecordCashDispensed(amount money.Cents) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.CashDispensed += amount
}

// RecordDepositPending accumulates pending deposits.
func (c *Collector) RecordDepositPending(amount money.Cents) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DepositsPending += amount
}

// RecordBillCount stores the latest bill inventory reading.
func (c *Collector) RecordBillCount(bills int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Bills = bills
}

// TransactionCount returns the count recorded for a kind/outcome pair.
func (c *Collector) TransactionCount(kind, outcome string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Transactions[kind+"/"+outcome]
}
