package transaction

import (
	"context"
	"errors"
	"fmt"

	"atm-sim/pkg/hardware"
	"atm-sim/pkg/ledger"
	"atm-sim/pkg/money"
	"atm-sim/pkg/terminal"
)

// withdrawalAmounts maps amount-menu options 1-5 to whole-dollar amounts.
var withdrawalAmounts = [...]int64{0, 20, 40, 60, 100, 200}

// cancelOption is the amount-menu option that cancels the withdrawal.
const cancelOption = 6

// Withdrawal dispenses cash against the available balance. Its only exit
// conditions are a successful dispense or an explicit cancel: insufficient
// funds or insufficient dispenser cash re-prompt within the same
// transaction.
type Withdrawal struct {
	account   int
	ledger    *ledger.Ledger
	term      terminal.Terminal
	dispenser hardware.Dispenser

	amount money.Cents
}

// Kind implements Transaction.
func (w *Withdrawal) Kind() Kind {
	return KindWithdrawal
}

// Amount implements Transaction: the dispensed amount, zero until dispensed.
func (w *Withdrawal) Amount() money.Cents {
	return w.amount
}

// Execute runs the withdrawal loop until cash is dispensed or the user
// cancels. The debit and the dispense commit as one atomic unit via
// ledger.Withdraw: a dispense failure rolls the debit back.
func (w *Withdrawal) Execute(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		amount, err := w.chooseAmount()
		if err != nil {
			return err
		}
		if amount == 0 {
			w.term.DisplayMessage("\nCanceling transaction...\n")
			return ErrCanceled
		}

		available, err := w.ledger.AvailableBalance(w.account)
		if err != nil {
			return fmt.Errorf("withdrawal: %w", err)
		}
		if amount > available {
			w.term.DisplayMessage("\nInsufficient funds in your account.\n")
			continue
		}
		if !w.dispenser.SufficientCash(amount) {
			w.term.DisplayMessage("\nInsufficient cash available in the ATM.\n")
			continue
		}

		err = w.ledger.Withdraw(w.account, amount, func() error {
			return w.dispenser.Dispense(amount)
		})
		switch {
		case err == nil:
			w.amount = amount
			w.term.DisplayMessage("\nYour cash has been dispensed. Please take your cash now.\n")
			return nil
		case ledger.IsInsufficientFunds(err):
			// Lost a race with another terminal between check and commit.
			w.term.DisplayMessage("\nInsufficient funds in your account.\n")
		case errors.Is(err, hardware.ErrInsufficientCash):
			w.term.DisplayMessage("\nInsufficient cash available in the ATM.\n")
		default:
			return fmt.Errorf("withdrawal: %w", err)
		}
	}
}

// chooseAmount presents the fixed amount menu until the user picks a valid
// option. It returns the chosen amount in cents, or zero for cancel.
func (w *Withdrawal) chooseAmount() (money.Cents, error) {
	for {
		w.term.DisplayMessage("\nWithdrawal menu:")
		w.term.DisplayMessage("\n1 - $20")
		w.term.DisplayMessage("\n2 - $40")
		w.term.DisplayMessage("\n3 - $60")
		w.term.DisplayMessage("\n4 - $100")
		w.term.DisplayMessage("\n5 - $200")
		w.term.DisplayMessage("\n6 - Cancel transaction")
		w.term.DisplayMessage("\n\nChoose a withdrawal amount: ")

		choice, err := w.term.ReadInt()
		if err != nil {
			return 0, fmt.Errorf("withdrawal: %w", err)
		}
		switch {
		case choice >= 1 && choice <= 5:
			return money.FromDollars(withdrawalAmounts[choice]), nil
		case choice == cancelOption:
			return 0, nil
		default:
			w.term.DisplayMessage("\nInvalid selection. Try again.")
		}
	}
}

var _ Transaction = (*Withdrawal)(nil)
