// Package transaction implements the terminal's transaction variants and
// the engine that dispatches them. The variant set is closed: balance
// inquiry, withdrawal and deposit. Each variant drives its own prompts on
// the terminal and executes against the ledger and the hardware devices.
package transaction

import (
	"context"
	"errors"

	"atm-sim/pkg/money"
)

// ErrCanceled is returned when the user cancels a transaction at an amount
// prompt. A canceled transaction never mutates the ledger or the dispenser.
var ErrCanceled = errors.New("transaction: canceled by user")

// ErrUnknownKind is returned when the engine is asked for a transaction
// kind outside the closed set.
var ErrUnknownKind = errors.New("transaction: unknown kind")

// Kind identifies a transaction variant.
type Kind uint8

const (
	// KindBalanceInquiry reads both balances without mutation.
	KindBalanceInquiry Kind = iota + 1
	// KindWithdrawal debits the account and dispenses cash.
	KindWithdrawal
	// KindDeposit credits the total balance with a pending deposit.
	KindDeposit
)

// String returns the label used for journals, metrics and logs.
func (k Kind) String() string {
	switch k {
	case KindBalanceInquiry:
		return "balance_inquiry"
	case KindWithdrawal:
		return "withdrawal"
	case KindDeposit:
		return "deposit"
	default:
		return "unknown"
	}
}

// Transaction is one menu selection's unit of work. A Transaction value is
// ephemeral: the engine constructs it, executes it once and discards it.
type Transaction interface {
	// Kind identifies the variant.
	Kind() Kind

	// Amount returns the transacted amount once known: the dispensed cash
	// for a withdrawal, the posted amount for a deposit, zero for a
	// balance inquiry or before the user has chosen.
	Amount() money.Cents

	// Execute runs the transaction to completion, driving the terminal
	// for any prompts it needs.
	Execute(ctx context.Context) error
}

// IsCanceled checks if the given error indicates a user cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}
