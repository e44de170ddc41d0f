// Package hardware models the terminal's physical devices: the cash
// dispenser and the deposit envelope slot. The simulated implementations
// never fail, but every contract admits failure so that real device drivers
// can slot in behind the same interfaces.
package hardware

import (
	"context"
	"errors"

	"atm-sim/pkg/money"
)

// Device errors.
var (
	// ErrInsufficientCash is returned when the dispenser cannot cover the
	// requested amount with its remaining bills.
	ErrInsufficientCash = errors.New("hardware: insufficient cash in dispenser")

	// ErrEnvelopeNotReceived is returned when a deposit envelope was not
	// inserted into the slot.
	ErrEnvelopeNotReceived = errors.New("hardware: deposit envelope not received")

	// ErrOutOfService is returned when a device's circuit breaker has
	// tripped and the device is temporarily out of service.
	ErrOutOfService = errors.New("hardware: device out of service")

	// ErrInvalidAmount is returned for non-positive dispense requests.
	ErrInvalidAmount = errors.New("hardware: amount must be positive")
)

// Dispenser is the cash dispenser contract.
type Dispenser interface {
	// SufficientCash reports whether the dispenser's remaining bills cover
	// the requested amount.
	SufficientCash(amount money.Cents) bool

	// Dispense releases cash for the requested amount, decrementing the
	// bill inventory. Callers are expected to check SufficientCash first;
	// Dispense still guards the inventory and returns ErrInsufficientCash
	// rather than going negative.
	Dispense(amount money.Cents) error

	// Remaining returns the number of bills left in the dispenser.
	Remaining() int
}

// DepositSlot is the envelope slot contract. The simulation always receives
// the envelope; real hardware may time out or fail, hence the error return.
type DepositSlot interface {
	// EnvelopeReceived reports whether a deposit envelope was physically
	// inserted.
	EnvelopeReceived(ctx context.Context) (bool, error)
}

// IsOutOfService checks if the given error indicates a tripped device breaker.
func IsOutOfService(err error) bool {
	return errors.Is(err, ErrOutOfService)
}
