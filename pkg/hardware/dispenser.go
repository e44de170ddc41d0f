package hardware

import (
	"sync"

	"atm-sim/pkg/money"
)

// BillDenomination is the dollar value of every bill the dispenser holds.
const BillDenomination = 20

// billValue is the value of one bill in cents.
const billValue = money.Cents(BillDenomination * money.CentsPerDollar)

// DefaultBillCount is the factory stock: 500 bills, $10,000.
const DefaultBillCount = 500

// CashDispenser is a simulated cash dispenser holding a single stack of
// $20 bills. The count only decreases; the simulation is never restocked
// during a run.
//
// Bills required for an amount are computed by integer division, matching
// the original terminal: an amount that is not a multiple of $20 silently
// loses the remainder. The withdrawal menu only offers multiples of $20,
// so the quirk is unreachable in normal operation, but it is preserved
// rather than fixed.
type CashDispenser struct {
	mu    sync.Mutex
	count int
}

// NewCashDispenser creates a dispenser stocked with the given number of
// $20 bills. A negative count is treated as empty.
func NewCashDispenser(bills int) *CashDispenser {
	if bills < 0 {
		bills = 0
	}
	return &CashDispenser{count: bills}
}

// SufficientCash reports whether the remaining bills cover amount.
// Negative amounts are never sufficient.
func (d *CashDispenser) SufficientCash(amount money.Cents) bool {
	if amount < 0 {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.count >= billsRequired(amount)
}

// Dispense releases cash for amount, decrementing the bill count. Unlike
// the original terminal, which trusted callers to check availability,
// Dispense refuses to drive the count negative and returns
// ErrInsufficientCash instead.
func (d *CashDispenser) Dispense(amount money.Cents) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	bills := billsRequired(amount)
	if bills > d.count {
		return ErrInsufficientCash
	}
	d.count -= bills
	return nil
}

// Remaining returns the number of bills left.
func (d *CashDispenser) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.count
}

// RemainingValue returns the total value of the bills left.
func (d *CashDispenser) RemainingValue() money.Cents {
	return money.Cents(d.Remaining()) * billValue
}

// billsRequired converts an amount to a bill count by integer division,
// discarding any remainder below one bill.
func billsRequired(amount money.Cents) int {
	return int(amount / billValue)
}
