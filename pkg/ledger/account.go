// Package ledger implements the in-memory bank ledger behind the terminal:
// a fixed set of accounts seeded at startup, keyed by account number, with
// PIN authentication and invariant-preserving balance mutators.
package ledger

import "atm-sim/pkg/money"

// Account is a single ledger entry. It tracks two balances:
//
//   - available: funds immediately withdrawable
//   - total: available plus pending deposits that have not yet cleared
//
// The invariant total >= available holds at all times. Deposits credit only
// the total balance; the simulation never clears them into available, so
// total can permanently exceed available once a deposit posts.
//
// Account methods are not safe for concurrent use on their own; the Ledger
// serializes all access behind its lock.
type Account struct {
	number    int
	pin       int
	available money.Cents
	total     money.Cents
}

// NewAccount creates an account with the given credentials and opening
// balances. The account number must be positive and total must cover
// available.
func NewAccount(number, pin int, available, total money.Cents) (*Account, error) {
	if number <= 0 {
		return nil, ErrInvalidAccount
	}
	if available < 0 || total < available {
		return nil, ErrInvalidAccount
	}
	return &Account{
		number:    number,
		pin:       pin,
		available: available,
		total:     total,
	}, nil
}

// Number returns the immutable account number.
func (a *Account) Number() int {
	return a.number
}

// ValidatePIN reports whether the given PIN matches the account's PIN exactly.
func (a *Account) ValidatePIN(pin int) bool {
	return pin == a.pin
}

// AvailableBalance returns the funds currently withdrawable.
func (a *Account) AvailableBalance() money.Cents {
	return a.available
}

// TotalBalance returns available funds plus uncleared pending deposits.
func (a *Account) TotalBalance() money.Cents {
	return a.total
}

// Credit posts a pending deposit: it increases the total balance only.
// The funds become part of total immediately but are never cleared into
// available by this system.
func (a *Account) Credit(amount money.Cents) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.total += amount
	return nil
}

// Debit decreases both balances by amount. The original terminal left the
// availability check to callers; guarding it here is a deliberate
// strengthening so that a missed caller-side check can never drive the
// available balance negative.
func (a *Account) Debit(amount money.Cents) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > a.available {
		return ErrInsufficientFunds
	}
	a.available -= amount
	a.total -= amount
	return nil
}

// undoDebit reverses a debit that could not complete, restoring both
// balances. Only the Ledger uses this, inside its critical section.
func (a *Account) undoDebit(amount money.Cents) {
	a.available += amount
	a.total += amount
}
