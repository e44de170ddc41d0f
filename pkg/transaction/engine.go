package transaction

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"atm-sim/pkg/hardware"
	"atm-sim/pkg/journal"
	"atm-sim/pkg/ledger"
	"atm-sim/pkg/logging"
	"atm-sim/pkg/metrics"
	"atm-sim/pkg/terminal"
)

// Config holds the collaborators the engine dispatches against.
type Config struct {
	// Ledger is the account ledger. Required.
	Ledger *ledger.Ledger

	// Dispenser is the cash dispenser. Required.
	Dispenser hardware.Dispenser

	// Slot is the deposit envelope slot. Required.
	Slot hardware.DepositSlot

	// Terminal is the screen/keypad pair transactions prompt on. Required.
	Terminal terminal.Terminal

	// Journal receives an audit entry per executed transaction. Optional.
	Journal *journal.Journal

	// Metrics receives transaction telemetry. Defaults to a no-op.
	Metrics metrics.Collector

	// Logger defaults to the global logger.
	Logger *logging.Logger
}

// Engine constructs and executes transactions for menu selections. One
// engine serves the terminal for its whole lifetime; Transaction values
// are created per selection and discarded after execution.
type Engine struct {
	ledger    *ledger.Ledger
	dispenser hardware.Dispenser
	slot      hardware.DepositSlot
	term      terminal.Terminal
	journal   *journal.Journal
	metrics   metrics.Collector
	logger    *logging.Logger
}

// NewEngine creates an engine from the given collaborators.
func NewEngine(config Config) (*Engine, error) {
	if config.Ledger == nil {
		return nil, errors.New("transaction: ledger is required")
	}
	if config.Dispenser == nil {
		return nil, errors.New("transaction: dispenser is required")
	}
	if config.Slot == nil {
		return nil, errors.New("transaction: deposit slot is required")
	}
	if config.Terminal == nil {
		return nil, errors.New("transaction: terminal is required")
	}
	if config.Metrics == nil {
		config.Metrics = metrics.NoOpCollector{}
	}
	if config.Logger == nil {
		config.Logger = logging.Global().Named("transaction")
	}
	return &Engine{
		ledger:    config.Ledger,
		dispenser: config.Dispenser,
		slot:      config.Slot,
		term:      config.Terminal,
		journal:   config.Journal,
		metrics:   config.Metrics,
		logger:    config.Logger,
	}, nil
}

// Execute builds the transaction for kind against the given account, runs
// it, and records the outcome in the journal, the metrics and the log.
// The transaction's own error is returned unchanged so callers can tell
// cancellations from failures.
func (e *Engine) Execute(ctx context.Context, kind Kind, account int) error {
	tx, err := e.newTransaction(kind, account)
	if err != nil {
		return err
	}

	start := time.Now()
	execErr := tx.Execute(ctx)
	duration := time.Since(start)
	outcome := outcomeOf(execErr)

	e.metrics.RecordTransaction(kind.String(), outcome, duration)
	if execErr == nil {
		switch kind {
		case KindWithdrawal:
			e.metrics.RecordCashDispensed(tx.Amount())
			e.metrics.RecordBillCount(e.dispenser.Remaining())
		case KindDeposit:
			e.metrics.RecordDepositPending(tx.Amount())
		}
	}

	if e.journal != nil {
		entry := journal.Entry{
			Kind:    kind.String(),
			Account: account,
			Amount:  tx.Amount(),
			Outcome: outcome,
		}
		if err := e.journal.Append(entry); err != nil {
			e.logger.Warn("journal append failed", zap.Error(err))
		}
	}

	fields := []zap.Field{
		zap.String("kind", kind.String()),
		zap.Int("account", account),
		zap.String("outcome", outcome),
		zap.Duration("duration", duration),
	}
	if outcome == metrics.OutcomeFailed {
		e.logger.Error("transaction failed", append(fields, zap.Error(execErr))...)
	} else {
		e.logger.Info("transaction executed", fields...)
	}
	return execErr
}

// newTransaction constructs the variant for kind.
func (e *Engine) newTransaction(kind Kind, account int) (Transaction, error) {
	switch kind {
	case KindBalanceInquiry:
		return &BalanceInquiry{account: account, ledger: e.ledger, term: e.term}, nil
	case KindWithdrawal:
		return &Withdrawal{account: account, ledger: e.ledger, term: e.term, dispenser: e.dispenser}, nil
	case KindDeposit:
		return &Deposit{account: account, ledger: e.ledger, term: e.term, slot: e.slot}, nil
	default:
		return nil, ErrUnknownKind
	}
}

// outcomeOf maps an execution error to a journal/metrics outcome label.
// A user cancel and a withheld envelope both end the transaction without
// mutation and count as canceled; everything else non-nil is a failure.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCompleted
	case errors.Is(err, ErrCanceled), errors.Is(err, hardware.ErrEnvelopeNotReceived):
		return metrics.OutcomeCanceled
	default:
		return metrics.OutcomeFailed
	}
}
