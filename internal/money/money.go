// Package money parses and formats currency amounts as decimals.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformed marks an amount that is missing or not a number.
var ErrMalformed = errors.New("malformed amount")

var ErrNegative = errors.New("amount must not be negative")

// Parse reads a stored amount. Empty or non-numeric input yields
// decimal.Zero together with ErrMalformed so the caller can decide
// whether to tolerate it.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, ErrMalformed
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrMalformed
	}
	return d, nil
}

// ParsePrice reads user input for a price. Comma decimal separators are
// accepted; negative values are rejected.
func ParsePrice(raw string) (decimal.Decimal, error) {
	d, err := Parse(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegative
	}
	return d, nil
}

// Format renders d with two decimals behind prefix, e.g. "Ksh.120.00".
func Format(prefix string, d decimal.Decimal) string {
	return prefix + d.StringFixed(2)
}
