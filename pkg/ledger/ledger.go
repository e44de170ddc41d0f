package ledger

import (
	"sort"
	"sync"

	"atm-sim/pkg/money"
)

// Ledger owns the collection of accounts. Callers address accounts by
// number only; account objects are never handed out, so all mutation goes
// through Credit, Debit and Withdraw.
//
// A single mutex serializes every operation. The reference terminal serves
// one session at a time, but the lock makes the ledger safe to share should
// multiple terminals ever front the same instance: no two debits against
// one account can both pass the availability check before either commits.
type Ledger struct {
	mu       sync.RWMutex
	accounts map[int]*Account
}

// New creates a ledger seeded with the given accounts. Account numbers must
// be unique. The account set is fixed for the lifetime of the ledger.
func New(accounts ...*Account) (*Ledger, error) {
	l := &Ledger{accounts: make(map[int]*Account, len(accounts))}
	for _, a := range accounts {
		if a == nil {
			return nil, ErrInvalidAccount
		}
		if _, exists := l.accounts[a.number]; exists {
			return nil, ErrDuplicateAccount
		}
		l.accounts[a.number] = a
	}
	return l, nil
}

// Authenticate reports whether an account with the given number exists and
// the PIN matches exactly. There is no lockout or retry counting.
func (l *Ledger) Authenticate(number, pin int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accounts[number]
	return ok && a.ValidatePIN(pin)
}

// AvailableBalance returns the withdrawable funds of the account.
func (l *Ledger) AvailableBalance(number int) (money.Cents, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accounts[number]
	if !ok {
		return 0, ErrAccountNotFound
	}
	return a.AvailableBalance(), nil
}

// TotalBalance returns available funds plus pending deposits of the account.
func (l *Ledger) TotalBalance(number int) (money.Cents, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.accounts[number]
	if !ok {
		return 0, ErrAccountNotFound
	}
	return a.TotalBalance(), nil
}

// Credit posts a pending deposit to the account, increasing total balance only.
func (l *Ledger) Credit(number int, amount money.Cents) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accounts[number]
	if !ok {
		return ErrAccountNotFound
	}
	return a.Credit(amount)
}

// Debit decreases both balances of the account by amount, failing with
// ErrInsufficientFunds when amount exceeds the available balance.
func (l *Ledger) Debit(number int, amount money.Cents) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accounts[number]
	if !ok {
		return ErrAccountNotFound
	}
	return a.Debit(amount)
}

// Withdraw debits the account and then invokes dispense, all inside the
// ledger's critical section. If dispense fails the debit is rolled back
// before the lock is released, so a debit without a matching cash dispense
// is never externally observable. A nil dispense behaves like Debit.
func (l *Ledger) Withdraw(number int, amount money.Cents, dispense func() error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	a, ok := l.accounts[number]
	if !ok {
		return ErrAccountNotFound
	}
	if err := a.Debit(amount); err != nil {
		return err
	}
	if dispense != nil {
		if err := dispense(); err != nil {
			a.undoDebit(amount)
			return err
		}
	}
	return nil
}

// AccountNumbers returns the account numbers in ascending order.
func (l *Ledger) AccountNumbers() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	numbers := make([]int, 0, len(l.accounts))
	for n := range l.accounts {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}
