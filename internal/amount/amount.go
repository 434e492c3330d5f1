// Package amount converts between caller-entered decimal strings and integer
// minor currency units (cents). All arithmetic goes through shopspring/decimal,
// never float64.
package amount

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalid matches every amount validation failure via errors.Is.
var ErrInvalid = errors.New("amount: invalid")

// The messages of these errors are shown to the caller as-is.
var (
	ErrInvalidAmount     error = &validationError{msg: "Invalid amount."}
	ErrNonPositiveAmount error = &validationError{msg: "Amount must be greater than zero."}
)

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrInvalid }

var hundred = decimal.NewFromInt(100)

// Inputs outside these bounds are rejected before any rounding, which would
// otherwise scale through a big.Int of 10^|exponent|.
const (
	maxInputLen = 64
	minExponent = -30
	maxExponent = 20
)

// ParseToCents parses raw as a base-10 decimal, rounds it to two fractional
// digits (half to even) and returns the value in cents.
//
//	"10"    -> 1000
//	"9.999" -> 1000
//	"0.004" -> ErrNonPositiveAmount
func ParseToCents(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxInputLen {
		return 0, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if exp := d.Exponent(); exp < minExponent || exp > maxExponent {
		return 0, ErrInvalidAmount
	}

	d = d.RoundBank(2)
	if !d.IsPositive() {
		return 0, ErrNonPositiveAmount
	}

	cents := d.Mul(hundred)
	if !cents.BigInt().IsInt64() {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// FormatFromCents renders cents as a decimal with exactly two fractional
// digits, e.g. 1234 -> "12.34".
func FormatFromCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
