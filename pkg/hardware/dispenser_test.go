package hardware

import (
	"context"
	"errors"
	"testing"

	"atm-sim/pkg/money"
)

func TestSufficientCash(t *testing.T) {
	tests := []struct {
		name   string
		bills  int
		amount money.Cents
		want   bool
	}{
		{"exact stock value", 500, 1000000, true},
		{"one bill", 500, 2000, true},
		{"exceeds stock value", 500, 1002000, false},
		{"odd amount under stock", 500, 999000, true},
		{"empty dispenser", 0, 2000, false},
		{"zero amount", 0, 0, true},
		{"negative amount", 500, -2000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewCashDispenser(tt.bills)
			if got := d.SufficientCash(tt.amount); got != tt.want {
				t.Errorf("SufficientCash(%v) with %d bills = %v, want %v", tt.amount, tt.bills, got, tt.want)
			}
		})
	}
}

// TestDispenseConservation verifies the inventory decreases by exactly
// amount/20 bills per successful withdrawal.
func TestDispenseConservation(t *testing.T) {
	d := NewCashDispenser(500)

	amounts := []money.Cents{2000, 4000, 6000, 10000, 20000} // $20..$200
	wantBills := 500
	for _, amount := range amounts {
		if err := d.Dispense(amount); err != nil {
			t.Fatalf("Dispense(%v): %v", amount, err)
		}
		wantBills -= int(amount / 2000)
	}
	if got := d.Remaining(); got != wantBills {
		t.Fatalf("Remaining() = %d, want %d", got, wantBills)
	}
	if got := d.RemainingValue(); got != money.Cents(wantBills)*2000 {
		t.Fatalf("RemainingValue() = %v, want %v", got, money.Cents(wantBills)*2000)
	}
}

func TestDispenseGuardsInventory(t *testing.T) {
	d := NewCashDispenser(2) // $40

	if err := d.Dispense(6000); !errors.Is(err, ErrInsufficientCash) {
		t.Fatalf("Dispense over stock: err = %v, want ErrInsufficientCash", err)
	}
	if got := d.Remaining(); got != 2 {
		t.Fatalf("Remaining() = %d after failed dispense, want 2", got)
	}

	if err := d.Dispense(4000); err != nil {
		t.Fatalf("Dispense: %v", err)
	}
	if got := d.Remaining(); got != 0 {
		t.Fatalf("Remaining() = %d, want 0", got)
	}
	if err := d.Dispense(2000); !errors.Is(err, ErrInsufficientCash) {
		t.Fatalf("Dispense from empty: err = %v, want ErrInsufficientCash", err)
	}
}

func TestDispenseRejectsNonPositive(t *testing.T) {
	d := NewCashDispenser(500)
	for _, amount := range []money.Cents{0, -2000} {
		if err := d.Dispense(amount); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Dispense(%v): err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

// TestDispenseIntegerDivisionQuirk pins the preserved source behavior:
// amounts that are not a multiple of $20 lose the remainder when converted
// to bills.
func TestDispenseIntegerDivisionQuirk(t *testing.T) {
	d := NewCashDispenser(500)
	if err := d.Dispense(999000); err != nil { // $9,990 -> 499 bills
		t.Fatalf("Dispense: %v", err)
	}
	if got := d.Remaining(); got != 1 {
		t.Fatalf("Remaining() = %d, want 1", got)
	}
}

func TestEnvelopeSlotAlwaysReceives(t *testing.T) {
	s := NewEnvelopeSlot()
	received, err := s.EnvelopeReceived(context.Background())
	if err != nil {
		t.Fatalf("EnvelopeReceived: %v", err)
	}
	if !received {
		t.Fatal("EnvelopeReceived() = false, want true")
	}
}
