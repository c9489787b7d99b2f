// Package money normalizes free-text currency input and formats amounts for display.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/hustle/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when input is not a whole, non-negative number.
var ErrInvalidAmount = errors.New("money: invalid amount")

// InvalidInputMessage is the warning shown for unparseable money fields.
const InvalidInputMessage = "Please enter a valid number (only digits and commas)."

// MaxAmount is the largest accepted money value. Two amounts at the cap still
// sum well inside int64.
const MaxAmount int64 = 1_000_000_000_000_000

// Parse strips thousands separators and surrounding whitespace and parses the
// rest as a whole number of currency units.
// e.g., "200,000" -> 200000, "" -> 0, "abc" -> 0 + ErrInvalidAmount
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, nil
	}
	if !isAllDigits(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v > MaxAmount {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return v, nil
}

// ParseField parses a labelled form field. Invalid input yields 0 and a
// warning notice rather than an error, so the form keeps working.
func ParseField(label, s string) (int64, *model.Notice) {
	v, err := Parse(s)
	if err != nil {
		msg := InvalidInputMessage
		if label != "" {
			msg = label + ": " + msg
		}
		return 0, &model.Notice{Level: model.LevelWarning, Message: msg}
	}
	return v, nil
}

// RoundToHundreds rounds v to the nearest 100, ties to even at the hundreds
// digit: 12549 -> 12500, 12550 -> 12600, 12450 -> 12400.
func RoundToHundreds(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).RoundBank(-2)
}

// Format renders a whole-unit amount with thousands separators and the
// currency symbol prefixed, e.g. "₦12,500".
func Format(symbol string, d decimal.Decimal) string {
	return symbol + humanize.Comma(d.Round(0).IntPart())
}

// FormatInt is Format for plain integer amounts.
func FormatInt(symbol string, n int64) string {
	return symbol + humanize.Comma(n)
}

func isAllDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
