package session_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"atm-sim/pkg/ledger"
	memmetrics "atm-sim/pkg/metrics/memory"
	"atm-sim/pkg/session"
	termmock "atm-sim/pkg/terminal/mock"
	"atm-sim/pkg/transaction"
)

// stubExecutor records the transactions the controller asks for.
type stubExecutor struct {
	kinds    []transaction.Kind
	accounts []int
	err      error
}

func (s *stubExecutor) Execute(ctx context.Context, kind transaction.Kind, account int) error {
	s.kinds = append(s.kinds, kind)
	s.accounts = append(s.accounts, account)
	return s.err
}

func testLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	a, err := ledger.NewAccount(12345, 54321, 100000, 120000)
	if err != nil {
		t.Fatalf("NewAccount: %v", err)
	}
	l, err := ledger.New(a)
	if err != nil {
		t.Fatalf("ledger.New: %v", err)
	}
	return l
}

func newController(t *testing.T, term *termmock.Terminal, exec *stubExecutor, m *memmetrics.Collector) *session.Controller {
	t.Helper()
	c, err := session.NewController(session.Config{
		Ledger:   testLedger(t),
		Engine:   exec,
		Terminal: term,
		Metrics:  m,
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func TestRunServesSessionThenExits(t *testing.T) {
	// Authenticate, view balance, exit, and then the keypad closes.
	term := termmock.NewInts(12345, 54321, 1, 4)
	exec := &stubExecutor{}
	m := memmetrics.New()
	c := newController(t, term, exec, m)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(exec.kinds) != 1 || exec.kinds[0] != transaction.KindBalanceInquiry {
		t.Errorf("executed kinds = %v, want [balance inquiry]", exec.kinds)
	}
	if len(exec.accounts) != 1 || exec.accounts[0] != 12345 {
		t.Errorf("executed accounts = %v, want [12345]", exec.accounts)
	}

	out := term.Output()
	for _, want := range []string{
		"\nWelcome!",
		"\nPlease enter your account number: ",
		"\nEnter your PIN: ",
		"\nMain menu:",
		"1 - View my balance",
		"4 - Exit",
		"\nExiting the system...",
		"\nThank you! Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if m.AuthSuccesses != 1 {
		t.Errorf("auth successes = %d, want 1", m.AuthSuccesses)
	}
	if m.Sessions != 1 {
		t.Errorf("sessions = %d, want 1", m.Sessions)
	}
}

func TestAuthenticationRetriesUntilValid(t *testing.T) {
	// A wrong PIN and a wrong account number before the good pair.
	term := termmock.NewInts(12345, 11111, 99999, 54321, 12345, 54321, 4)
	exec := &stubExecutor{}
	m := memmetrics.New()
	c := newController(t, term, exec, m)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := strings.Count(term.Output(), "Invalid account number or PIN. Please try again."); got != 2 {
		t.Errorf("retry prompts = %d, want 2", got)
	}
	if m.AuthFailures != 2 || m.AuthSuccesses != 1 {
		t.Errorf("auth failures/successes = %d/%d, want 2/1", m.AuthFailures, m.AuthSuccesses)
	}
}

func TestInvalidMenuSelectionReprompts(t *testing.T) {
	term := termmock.NewInts(12345, 54321, 7, 4)
	exec := &stubExecutor{}
	c := newController(t, term, exec, memmetrics.New())

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(term.Output(), "\nYou did not enter a valid selection. Try again.") {
		t.Errorf("output missing invalid-selection message, got %q", term.Output())
	}
	if len(exec.kinds) != 0 {
		t.Errorf("executed kinds = %v, want none", exec.kinds)
	}
}

func TestMalformedInputEndsOnlyCurrentSession(t *testing.T) {
	// Garbage during authentication closes that session; the next
	// customer still gets a greeting and a working machine.
	term := termmock.New(
		termmock.Garbled(),
		termmock.Int(12345), termmock.Int(54321), termmock.Int(4),
	)
	exec := &stubExecutor{}
	m := memmetrics.New()
	c := newController(t, term, exec, m)

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := strings.Count(term.Output(), "\nWelcome!"); got != 2 {
		t.Errorf("greetings = %d, want 2", got)
	}
	if !strings.Contains(term.Output(), "\nThank you! Goodbye!") {
		t.Errorf("second session never completed, output %q", term.Output())
	}
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newController(t, termmock.NewInts(), &stubExecutor{}, memmetrics.New())
	if err := c.Run(ctx); err != context.Canceled {
		t.Fatalf("Run: err = %v, want context.Canceled", err)
	}
}

func TestCanceledTransactionKeepsSessionAlive(t *testing.T) {
	term := termmock.NewInts(12345, 54321, 2, 4)
	exec := &stubExecutor{err: transaction.ErrCanceled}
	c := newController(t, term, exec, memmetrics.New())

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// The menu came back after the canceled withdrawal.
	if got := strings.Count(term.Output(), "\nMain menu:"); got != 2 {
		t.Errorf("menus shown = %d, want 2", got)
	}
}

func TestFailedTransactionApologizesAndContinues(t *testing.T) {
	term := termmock.NewInts(12345, 54321, 2, 4)
	exec := &stubExecutor{err: errors.New("cassette jam")}
	c := newController(t, term, exec, memmetrics.New())

	if err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(term.Output(), "cannot complete your withdrawal right now") {
		t.Errorf("output missing apology, got %q", term.Output())
	}
	// The customer still reached the exit option.
	if !strings.Contains(term.Output(), "\nThank you! Goodbye!") {
		t.Errorf("session did not continue after the fault")
	}
}
