package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"atm-sim/pkg/money"
)

// Console is a Terminal over an io.Reader / io.Writer pair, normally
// stdin and stdout. Input is read as whitespace-delimited tokens, so both
// "12345\n" and "12345 54321\n" work.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsole creates a console terminal reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Console{scanner: scanner, out: out}
}

// DisplayMessage writes text without a trailing newline.
func (c *Console) DisplayMessage(text string) {
	fmt.Fprint(c.out, text)
}

// DisplayLine writes text followed by a newline.
func (c *Console) DisplayLine(text string) {
	fmt.Fprintln(c.out, text)
}

// DisplayAmount writes the amount as formatted currency.
func (c *Console) DisplayAmount(amount money.Cents) {
	fmt.Fprint(c.out, amount.Format())
}

// ReadInt blocks for the next input token and parses it as an integer.
func (c *Console) ReadInt() (int, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrClosed, err)
		}
		return 0, ErrClosed
	}
	n, err := strconv.Atoi(c.scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInputFormat, c.scanner.Text())
	}
	return n, nil
}

var _ Terminal = (*Console)(nil)
