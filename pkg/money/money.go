// Package money represents monetary values as integer cents to avoid
// floating point rounding errors in balance arithmetic.
//
// The terminal uses two distinct units at its edges: the withdrawal menu is
// denominated in whole dollars while deposit entry is in cents. Both convert
// to Cents here and nowhere else.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a monetary amount in US cents.
type Cents int64

// CentsPerDollar is the conversion factor between dollars and cents.
const CentsPerDollar = 100

// FromDollars converts a whole-dollar amount to Cents.
func FromDollars(dollars int64) Cents {
	return Cents(dollars * CentsPerDollar)
}

// Dollars returns the whole-dollar part of the amount, truncated toward zero.
func (c Cents) Dollars() int64 {
	return int64(c) / CentsPerDollar
}

// Format renders the amount as a currency string with two fractional digits
// and thousands separators, e.g. "$1,234.56". Negative amounts are rendered
// with a leading minus sign: "-$12.00".
func (c Cents) Format() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := v / CentsPerDollar
	frac := v % CentsPerDollar
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), frac)
}

// String implements fmt.Stringer using Format.
func (c Cents) String() string {
	return c.Format()
}

// Parse converts a decimal dollar string such as "1000", "1000.5" or
// "$1,000.50" into Cents. At most two fractional digits are accepted.
func Parse(s string) (Cents, error) {
	orig := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	wholePart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		wholePart = s[:i]
		fracPart = s[i+1:]
	}
	if wholePart == "" && fracPart == "" {
		return 0, fmt.Errorf("money: invalid amount %q", orig)
	}
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("money: too many fractional digits in %q", orig)
	}
	if wholePart == "" {
		wholePart = "0"
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	whole, err := strconv.ParseInt(wholePart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", orig)
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: invalid amount %q", orig)
	}

	cents := whole*CentsPerDollar + frac
	if neg {
		cents = -cents
	}
	return Cents(cents), nil
}

// groupThousands formats a non-negative integer with comma separators.
func groupThousands(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
