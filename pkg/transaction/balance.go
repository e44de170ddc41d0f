package transaction

import (
	"context"
	"fmt"

	"atm-sim/pkg/ledger"
	"atm-sim/pkg/money"
	"atm-sim/pkg/terminal"
)

// BalanceInquiry reads and displays both balances of the active account.
type BalanceInquiry struct {
	account int
	ledger  *ledger.Ledger
	term    terminal.Terminal
}

// Kind implements Transaction.
func (b *BalanceInquiry) Kind() Kind {
	return KindBalanceInquiry
}

// Amount implements Transaction; a balance inquiry moves no money.
func (b *BalanceInquiry) Amount() money.Cents {
	return 0
}

// Execute displays the available and total balance. No mutation.
func (b *BalanceInquiry) Execute(ctx context.Context) error {
	available, err := b.ledger.AvailableBalance(b.account)
	if err != nil {
		return fmt.Errorf("balance inquiry: %w", err)
	}
	total, err := b.ledger.TotalBalance(b.account)
	if err != nil {
		return fmt.Errorf("balance inquiry: %w", err)
	}

	b.term.DisplayMessage("\nBalance Information:\n - Available balance: ")
	b.term.DisplayAmount(available)
	b.term.DisplayMessage("\n - Total balance: ")
	b.term.DisplayAmount(total)
	b.term.DisplayLine("")
	return nil
}

var _ Transaction = (*BalanceInquiry)(nil)
