// Package mock provides mock hardware devices for testing. Each mock allows
// injecting custom behavior per method and tracks call counts.
package mock

import (
	"context"
	"sync/atomic"

	"atm-sim/pkg/money"
)

// Dispenser is a mock cash dispenser. Set the Func hooks to customize
// behavior; unset hooks report unlimited cash and successful dispenses.
type Dispenser struct {
	SufficientCashFunc func(amount money.Cents) bool
	DispenseFunc       func(amount money.Cents) error
	RemainingFunc      func() int

	sufficientCalls int64
	dispenseCalls   int64
}

// SufficientCash implements hardware.Dispenser with optional custom behavior.
func (m *Dispenser) SufficientCash(amount money.Cents) bool {
	atomic.AddInt64(&m.sufficientCalls, 1)
	if m.SufficientCashFunc != nil {
		return m.SufficientCashFunc(amount)
	}
	return true
}

// Dispense implements hardware.Dispenser with optional custom behavior.
func (m *Dispenser) Dispense(amount money.Cents) error {
	atomic.AddInt64(&m.dispenseCalls, 1)
	if m.DispenseFunc != nil {
		return m.DispenseFunc(amount)
	}
	return nil
}

// Remaining implements hardware.Dispenser with optional custom behavior.
func (m *Dispenser) Remaining() int {
	if m.RemainingFunc != nil {
		return m.RemainingFunc()
	}
	return 0
}

// SufficientCashCalls returns the number of SufficientCash calls (thread-safe).
func (m *Dispenser) SufficientCashCalls() int {
	return int(atomic.LoadInt64(&m.sufficientCalls))
}

// DispenseCalls returns the number of Dispense calls (thread-safe).
func (m *Dispenser) DispenseCalls() int {
	return int(atomic.LoadInt64(&m.dispenseCalls))
}

// Slot is a mock deposit slot. Set EnvelopeReceivedFunc to customize
// behavior; the default reports the envelope as received.
type Slot struct {
	EnvelopeReceivedFunc func(ctx context.Context) (bool, error)

	receivedCalls int64
}

// EnvelopeReceived implements hardware.DepositSlot with optional custom behavior.
func (m *Slot) EnvelopeReceived(ctx context.Context) (bool, error) {
	atomic.AddInt64(&m.receivedCalls, 1)
	if m.EnvelopeReceivedFunc != nil {
		return m.EnvelopeReceivedFunc(ctx)
	}
	return true, nil
}

// EnvelopeReceivedCalls returns the number of EnvelopeReceived calls (thread-safe).
func (m *Slot) EnvelopeReceivedCalls() int {
	return int(atomic.LoadInt64(&m.receivedCalls))
}
