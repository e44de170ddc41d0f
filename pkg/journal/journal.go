// Package journal writes an append-only audit trail of executed
// transactions as JSON lines. The journal is write-only: it is never read
// back to restore ledger state, so the terminal still starts from its
// seeded balances after a restart.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"atm-sim/pkg/money"
)

// Entry is one journaled transaction.
type Entry struct {
	ID      uuid.UUID   `json:"id"`
	Kind    string      `json:"kind"`
	Account int         `json:"account"`
	Amount  money.Cents `json:"amount_cents"`
	Outcome string      `json:"outcome"`
	At      time.Time   `json:"at"`
}

// Journal appends entries to a file, one JSON object per line.
type Journal struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// Open opens or creates the journal file at path in append mode.
func Open(path string) (*Journal, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	return &Journal{file: file, enc: json.NewEncoder(file)}, nil
}

// Append writes one entry and syncs it to disk. A zero ID or timestamp is
// filled in.
func (j *Journal) Append(e Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.enc.Encode(e); err != nil {
		return fmt.Errorf("journal: append: %w", err)
	}
	return j.file.Sync()
}

// Close closes the journal file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}
