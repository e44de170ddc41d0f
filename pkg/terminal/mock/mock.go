// Package mock provides a scripted terminal for driving sessions in tests.
package mock

import (
	"strings"
	"sync"

	"atm-sim/pkg/money"
	"atm-sim/pkg/terminal"
)

// Response is one scripted answer for ReadInt: either a value or an error.
type Response struct {
	Value int
	Err   error
}

// Terminal replays a fixed script of keypad responses and captures all
// screen output. Once the script is exhausted ReadInt reports ErrClosed,
// which ends the session loop the same way a closed stdin would.
type Terminal struct {
	mu        sync.Mutex
	responses []Response
	next      int
	output    strings.Builder
}

// New creates a scripted terminal from the given responses.
func New(responses ...Response) *Terminal {
	return &Terminal{responses: responses}
}

// NewInts creates a scripted terminal that answers the given integers in order.
func NewInts(values ...int) *Terminal {
	responses := make([]Response, len(values))
	for i, v := range values {
		responses[i] = Response{Value: v}
	}
	return New(responses...)
}

// Int returns a Response carrying a value.
func Int(v int) Response {
	return Response{Value: v}
}

// Garbled returns a Response simulating non-numeric keypad input.
func Garbled() Response {
	return Response{Err: terminal.ErrInputFormat}
}

// DisplayMessage implements terminal.Terminal.
func (m *Terminal) DisplayMessage(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.output.WriteString(text)
}

// DisplayLine implements terminal.Terminal.
func (m *Terminal) DisplayLine(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.output.WriteString(text)
	m.output.WriteByte('\n')
}

// DisplayAmount implements terminal.Terminal.
func (m *Terminal) DisplayAmount(amount money.Cents) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.output.WriteString(amount.Format())
}

// ReadInt implements terminal.Terminal by replaying the script.
func (m *Terminal) ReadInt() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.next >= len(m.responses) {
		return 0, terminal.ErrClosed
	}
	r := m.responses[m.next]
	m.next++
	if r.Err != nil {
		return 0, r.Err
	}
	return r.Value, nil
}

// Output returns everything displayed so far.
func (m *Terminal) Output() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.output.String()
}

// Reads returns how many scripted responses have been consumed.
func (m *Terminal) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next
}

var _ terminal.Terminal = (*Terminal)(nil)
