package transaction

import (
	"context"
	"fmt"

	"atm-sim/pkg/hardware"
	"atm-sim/pkg/ledger"
	"atm-sim/pkg/money"
	"atm-sim/pkg/terminal"
)

// depositNotReceived is shown whenever the envelope never makes it into
// the slot, whether the user held it back or the hardware failed.
const depositNotReceived = "\nYou did not insert an envelope, so the ATM has canceled your transaction."

// Deposit accepts an envelope and credits the deposited amount to the
// account's total balance. The funds stay pending: the available balance
// is untouched until clearance, which this system never performs.
//
// Deposit entry is in cents, unlike the dollar-denominated withdrawal
// menu; the two units are kept distinct on purpose.
type Deposit struct {
	account int
	ledger  *ledger.Ledger
	term    terminal.Terminal
	slot    hardware.DepositSlot

	amount money.Cents
}

// Kind implements Transaction.
func (d *Deposit) Kind() Kind {
	return KindDeposit
}

// Amount implements Transaction: the posted amount, zero until posted.
func (d *Deposit) Amount() money.Cents {
	return d.amount
}

// Execute prompts for an amount, requests the envelope and credits the
// account. Cancellation and a missing envelope are both side-effect-free.
func (d *Deposit) Execute(ctx context.Context) error {
	d.term.DisplayMessage("\nPlease enter a deposit amount in CENTS (or 0 to cancel): ")
	input, err := d.term.ReadInt()
	if err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	if input <= 0 {
		d.term.DisplayLine("\nCanceling transaction...")
		return ErrCanceled
	}
	amount := money.Cents(input)

	d.term.DisplayMessage("\nPlease insert a deposit envelope containing ")
	d.term.DisplayAmount(amount)
	d.term.DisplayLine(".")

	received, err := d.slot.EnvelopeReceived(ctx)
	if err != nil {
		d.term.DisplayLine(depositNotReceived)
		return fmt.Errorf("deposit: %w", err)
	}
	if !received {
		d.term.DisplayLine(depositNotReceived)
		return hardware.ErrEnvelopeNotReceived
	}

	d.term.DisplayLine("\nYour envelope has been received." +
		"\nNOTE: The money just deposited will not be available until we verify the amount of any enclosed cash and your checks clear.")

	if err := d.ledger.Credit(d.account, amount); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	d.amount = amount
	return nil
}

var _ Transaction = (*Deposit)(nil)
