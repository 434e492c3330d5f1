package amount

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseToCents(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{"whole", "10", 1000},
		{"two places", "25.00", 2500},
		{"rounds up into next unit", "9.999", 1000},
		{"one place", "0.5", 50},
		{"smallest unit", "0.01", 1},
		{"half to even up", "0.015", 2},
		{"half to even down", "0.025", 2},
		{"surrounding space", "  12.34 ", 1234},
		{"exponent", "1e2", 10000},
		{"large", "1234567.89", 123456789},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseToCents(tt.raw)
			if err != nil {
				t.Fatalf("ParseToCents(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseToCents(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseToCentsRejects(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty", "", ErrInvalidAmount},
		{"blank", "   ", ErrInvalidAmount},
		{"not a number", "abc", ErrInvalidAmount},
		{"trailing garbage", "10usd", ErrInvalidAmount},
		{"zero", "0", ErrNonPositiveAmount},
		{"negative", "-5", ErrNonPositiveAmount},
		{"rounds to zero", "0.004", ErrNonPositiveAmount},
		{"half rounds to even zero", "0.005", ErrNonPositiveAmount},
		{"overflows int64 cents", "100000000000000000000", ErrInvalidAmount},
		{"huge exponent", "1e5000000", ErrInvalidAmount},
		{"tiny exponent", "1e-5000000", ErrInvalidAmount},
		{"zero with tiny exponent", "0e-5000000", ErrInvalidAmount},
		{"exponent above bound", "1e21", ErrInvalidAmount},
		{"too many fractional digits", "0." + strings.Repeat("0", 30) + "1", ErrInvalidAmount},
		{"too long", strings.Repeat("1", 65), ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			got, err := ParseToCents(tt.raw)
			// Generous bound; unbounded exponents used to take seconds.
			if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
				t.Errorf("ParseToCents(%q) took %v", tt.raw, elapsed)
			}
			if err == nil {
				t.Fatalf("ParseToCents(%q) = %d, want error", tt.raw, got)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseToCents(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("ParseToCents(%q) error %v does not match ErrInvalid", tt.raw, err)
			}
		})
	}
}

func TestFormatFromCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{1234, "12.34"},
		{2500, "25.00"},
		{1, "0.01"},
		{10, "0.10"},
		{0, "0.00"},
		{100000, "1000.00"},
	}

	for _, tt := range tests {
		if got := FormatFromCents(tt.cents); got != tt.want {
			t.Errorf("FormatFromCents(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, raw := range []string{"0.01", "1.50", "12.34", "25.00", "999.99", "5000.10"} {
		cents, err := ParseToCents(raw)
		if err != nil {
			t.Fatalf("ParseToCents(%q) error = %v", raw, err)
		}
		if got := FormatFromCents(cents); got != raw {
			t.Errorf("round trip %q -> %d -> %q", raw, cents, got)
		}
	}
}
