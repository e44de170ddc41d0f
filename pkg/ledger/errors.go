package ledger

import "errors"

// Domain errors returned by ledger operations.
var (
	// ErrAccountNotFound is returned when an account number does not resolve.
	// After authentication the active account must always resolve, so callers
	// treat this as an internal invariant violation rather than user error.
	ErrAccountNotFound = errors.New("ledger: account not found")

	// ErrInsufficientFunds is returned when a debit exceeds the available balance.
	ErrInsufficientFunds = errors.New("ledger: insufficient funds")

	// ErrInvalidAmount is returned when a credit or debit amount is not positive.
	ErrInvalidAmount = errors.New("ledger: amount must be positive")

	// ErrDuplicateAccount is returned when the ledger is seeded with two
	// accounts sharing an account number.
	ErrDuplicateAccount = errors.New("ledger: duplicate account number")

	// ErrInvalidAccount is returned when seed data for an account is malformed.
	ErrInvalidAccount = errors.New("ledger: invalid account")
)

// IsNotFound checks if the given error indicates a missing account.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsInsufficientFunds checks if the given error indicates an uncovered debit.
func IsInsufficientFunds(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}
