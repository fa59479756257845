package tradetools

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "$0.00"},
		{"10", "$10.00"},
		{"1234.56", "$1,234.56"},
		{"0.0145", "$0.01"}, // display rounding only, the value stays exact
	}
	for _, tt := range tests {
		if got := USD(dec(tt.amount)).String(); got != tt.expected {
			t.Errorf("USD(%s).String() = %q, want %q", tt.amount, got, tt.expected)
		}
	}
}

func TestMoneyAdd(t *testing.T) {
	total := USD(dec("10.50")).Add(USD(dec("0.0145")))
	if !total.Equal(USD(dec("10.5145"))) {
		t.Errorf("sum = %v, want $10.5145 exactly", total)
	}
	// The empty currency is weak and adopts the other operand's.
	weak := M(dec("1"), "").Add(USD(dec("2")))
	if weak.Currency() != "USD" {
		t.Errorf("weak currency sum = %q, want USD", weak.Currency())
	}
}

func TestNotional(t *testing.T) {
	execs := Merge([]RawExecution{raw("01/02/24", NewClock(9, 30, 0), Buy, 100, "ABC", "10.00")})
	if got := execs[0].Notional().String(); got != "$1,000.00" {
		t.Errorf("notional = %q, want $1,000.00", got)
	}
}
