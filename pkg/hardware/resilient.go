package hardware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"atm-sim/pkg/logging"
	"atm-sim/pkg/money"
)

// CircuitBreakerConfig tunes the breaker guarding a physical device.
type CircuitBreakerConfig struct {
	// MaxRequests is the number of probe requests allowed while half-open.
	MaxRequests uint32

	// Interval is the cyclic period for clearing failure counts while closed.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing again.
	Timeout time.Duration

	// ConsecutiveFailures is the trip threshold while closed.
	ConsecutiveFailures uint32
}

// DefaultCircuitBreakerConfig returns conservative defaults: trip after
// 3 consecutive hardware faults, retry after 30 seconds.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxRequests:         1,
		Interval:            60 * time.Second,
		Timeout:             30 * time.Second,
		ConsecutiveFailures: 3,
	}
}

// newBreaker builds a gobreaker instance for a named device. Business
// outcomes (insufficient cash, missing envelope) are not hardware faults
// and never trip the breaker.
func newBreaker(name string, config CircuitBreakerConfig, logger *logging.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, ErrInsufficientCash) ||
				errors.Is(err, ErrEnvelopeNotReceived)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("device breaker state changed",
				zap.String("device", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
}

// breakerErr maps gobreaker's open-state errors onto ErrOutOfService.
func breakerErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrOutOfService, err)
	}
	return err
}

// ResilientDispenser wraps a Dispenser with a circuit breaker. Repeated
// hardware faults trip the breaker and subsequent dispenses fail fast with
// ErrOutOfService until the device recovers.
type ResilientDispenser struct {
	dispenser Dispenser
	cb        *gobreaker.CircuitBreaker
}

// NewResilientDispenser wraps dispenser with breaker protection.
func NewResilientDispenser(dispenser Dispenser, config CircuitBreakerConfig) *ResilientDispenser {
	logger := logging.Global().Named("hardware")
	return &ResilientDispenser{
		dispenser: dispenser,
		cb:        newBreaker("cash-dispenser", config, logger),
	}
}

// SufficientCash delegates to the wrapped dispenser; the availability query
// is a pure inventory read and bypasses the breaker.
func (r *ResilientDispenser) SufficientCash(amount money.Cents) bool {
	return r.dispenser.SufficientCash(amount)
}

// Dispense runs the wrapped dispense through the circuit breaker.
func (r *ResilientDispenser) Dispense(amount money.Cents) error {
	_, err := r.cb.Execute(func() (interface{}, error) {
		return nil, r.dispenser.Dispense(amount)
	})
	return breakerErr(err)
}

// Remaining delegates to the wrapped dispenser.
func (r *ResilientDispenser) Remaining() int {
	return r.dispenser.Remaining()
}

var _ Dispenser = (*ResilientDispenser)(nil)

// ResilientSlot wraps a DepositSlot with a circuit breaker.
type ResilientSlot struct {
	slot DepositSlot
	cb   *gobreaker.CircuitBreaker
}

// NewResilientSlot wraps slot with breaker protection.
func NewResilientSlot(slot DepositSlot, config CircuitBreakerConfig) *ResilientSlot {
	logger := logging.Global().Named("hardware")
	return &ResilientSlot{
		slot: slot,
		cb:   newBreaker("deposit-slot", config, logger),
	}
}

// EnvelopeReceived runs the wrapped query through the circuit breaker.
// A missing envelope is a normal outcome, not a device fault.
func (r *ResilientSlot) EnvelopeReceived(ctx context.Context) (bool, error) {
	out, err := r.cb.Execute(func() (interface{}, error) {
		return r.slot.EnvelopeReceived(ctx)
	})
	if err != nil {
		return false, breakerErr(err)
	}
	received, _ := out.(bool)
	return received, nil
}

var _ DepositSlot = (*ResilientSlot)(nil)
