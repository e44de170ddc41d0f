// Package terminal defines the text terminal collaborator the transaction
// core talks to: a screen for output and a keypad for blocking integer
// input. The core never touches stdin/stdout directly, so sessions can be
// driven by a console, a test script, or eventually real terminal firmware.
package terminal

import (
	"errors"

	"atm-sim/pkg/money"
)

var (
	// ErrInputFormat is returned by ReadInt when the entered token is not a
	// whole number. The session treats it as fatal to the current session,
	// not to the process.
	ErrInputFormat = errors.New("terminal: input is not a whole number")

	// ErrClosed is returned by ReadInt when the input stream has ended.
	ErrClosed = errors.New("terminal: input closed")
)

// Terminal is the screen + keypad contract consumed by the core.
type Terminal interface {
	// DisplayMessage presents text without a trailing newline.
	DisplayMessage(text string)

	// DisplayLine presents text followed by a newline.
	DisplayLine(text string)

	// DisplayAmount presents a monetary value formatted as currency with
	// two fractional digits and thousands separators.
	DisplayAmount(amount money.Cents)

	// ReadInt blocks until a whole number is entered. It fails with
	// ErrInputFormat on non-numeric input and ErrClosed when no further
	// input can arrive.
	ReadInt() (int, error)
}

// IsInputFormat checks if the given error indicates malformed numeric entry.
func IsInputFormat(err error) bool {
	return errors.Is(err, ErrInputFormat)
}

// IsClosed checks if the given error indicates the terminal input has ended.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
