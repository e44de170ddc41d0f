package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"atm-sim/pkg/hardware"
	"atm-sim/pkg/ledger"
	"atm-sim/pkg/logging"
	"atm-sim/pkg/metrics"
	"atm-sim/pkg/terminal"
	"atm-sim/pkg/transaction"
)

// Executor runs a single transaction for an authenticated account.
// *transaction.Engine satisfies it.
type Executor interface {
	Execute(ctx context.Context, kind transaction.Kind, account int) error
}

// Config collects the collaborators a Controller needs.
type Config struct {
	// Ledger answers the PIN check.
	Ledger *ledger.Ledger
	// Engine executes the transactions picked from the main menu.
	Engine Executor
	// Terminal is the screen and keypad the customer uses.
	Terminal terminal.Terminal
	// Metrics receives authentication and session observations.
	// Defaults to a no-op collector.
	Metrics metrics.Collector
	// Logger defaults to the global logger.
	Logger *logging.Logger
}

// Validate reports the first missing required collaborator.
func (c Config) Validate() error {
	if c.Ledger == nil {
		return errors.New("session: ledger is required")
	}
	if c.Engine == nil {
		return errors.New("session: engine is required")
	}
	if c.Terminal == nil {
		return errors.New("session: terminal is required")
	}
	return nil
}

// Controller owns the machine's interactive loop. One customer is served
// at a time; each served customer is a Session.
type Controller struct {
	ledger  *ledger.Ledger
	engine  Executor
	term    terminal.Terminal
	metrics metrics.Collector
	logger  *logging.Logger
}

// NewController builds a Controller from config.
func NewController(config Config) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Metrics == nil {
		config.Metrics = metrics.NoOpCollector{}
	}
	if config.Logger == nil {
		config.Logger = logging.Global().Named("session")
	}
	return &Controller{
		ledger:  config.Ledger,
		engine:  config.Engine,
		term:    config.Terminal,
		metrics: config.Metrics,
		logger:  config.Logger,
	}, nil
}

// Run serves customers until the terminal closes or ctx is canceled.
// A malformed keypad read ends only the current session; the next
// customer is greeted normally.
func (c *Controller) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := c.serve(ctx)
		switch {
		case err == nil:
		case terminal.IsClosed(err):
			return nil
		case terminal.IsInputFormat(err):
			c.logger.Warn("session aborted on malformed input", zap.Error(err))
		default:
			return err
		}
	}
}

// serve greets, authenticates and runs the menu loop for one customer.
func (c *Controller) serve(ctx context.Context) error {
	s := newSession()
	c.term.DisplayLine("\nWelcome!")

	if err := c.authenticate(ctx, &s); err != nil {
		return err
	}
	c.logger.Info("customer authenticated",
		zap.String("session", s.ID.String()),
		zap.Int("account", s.Account))

	err := c.mainMenu(ctx, &s)

	s.State = StateUnauthenticated
	c.metrics.RecordSession(s.Duration())
	c.logger.Info("session ended",
		zap.String("session", s.ID.String()),
		zap.Duration("duration", s.Duration()))
	return err
}

// authenticate collects credentials until the PIN check passes. There is
// no attempt limit and no lockout.
func (c *Controller) authenticate(ctx context.Context, s *Session) error {
	s.State = StateAuthenticating
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.term.DisplayMessage("\nPlease enter your account number: ")
		account, err := c.term.ReadInt()
		if err != nil {
			return err
		}
		c.term.DisplayMessage("\nEnter your PIN: ")
		pin, err := c.term.ReadInt()
		if err != nil {
			return err
		}

		ok := c.ledger.Authenticate(account, pin)
		c.metrics.RecordAuthentication(ok)
		if ok {
			s.Account = account
			s.State = StateAuthenticated
			return nil
		}
		c.term.DisplayLine("Invalid account number or PIN. Please try again.")
	}
}

// menu selections. Options 1 through 3 line up with transaction kinds.
const (
	menuBalanceInquiry = 1
	menuWithdrawal     = 2
	menuDeposit        = 3
	menuExit           = 4
)

// mainMenu loops over the menu until the customer exits.
func (c *Controller) mainMenu(ctx context.Context, s *Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.displayMenu()
		choice, err := c.term.ReadInt()
		if err != nil {
			return err
		}

		switch choice {
		case menuBalanceInquiry, menuWithdrawal, menuDeposit:
			if err := c.runTransaction(ctx, s, transaction.Kind(choice)); err != nil {
				return err
			}
		case menuExit:
			c.term.DisplayLine("\nExiting the system...")
			c.term.DisplayLine("\nThank you! Goodbye!")
			return nil
		default:
			c.term.DisplayLine("\nYou did not enter a valid selection. Try again.")
		}
	}
}

func (c *Controller) displayMenu() {
	c.term.DisplayLine("\nMain menu:")
	c.term.DisplayLine("1 - View my balance")
	c.term.DisplayLine("2 - Withdraw cash")
	c.term.DisplayLine("3 - Deposit funds")
	c.term.DisplayLine("4 - Exit\n")
	c.term.DisplayMessage("Enter a choice: ")
}

// runTransaction executes one transaction and decides whether the menu
// keeps going. Cancellations and device faults end the transaction, not
// the session.
func (c *Controller) runTransaction(ctx context.Context, s *Session, kind transaction.Kind) error {
	err := c.engine.Execute(ctx, kind, s.Account)
	switch {
	case err == nil:
		return nil
	case transaction.IsCanceled(err), errors.Is(err, hardware.ErrEnvelopeNotReceived):
		// The transaction already explained itself on screen.
		return nil
	case terminal.IsInputFormat(err), terminal.IsClosed(err):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		c.logger.Error("transaction failed",
			zap.String("session", s.ID.String()),
			zap.Stringer("kind", kind),
			zap.Error(err))
		c.term.DisplayLine(fmt.Sprintf("\nThe ATM cannot complete your %s right now. Please try again later.", kind))
		return nil
	}
}
