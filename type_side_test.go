package tradetools

import "testing"

func TestSideCollapse(t *testing.T) {
	tests := []struct {
		in, out Side
	}{
		{Buy, Buy},
		{Sell, Sell},
		{Cover, Buy},
		{Short, Sell},
		{Unknown, Unknown},
	}
	for _, tt := range tests {
		if got := tt.in.Collapse(); got != tt.out {
			t.Errorf("%s.Collapse() = %s, want %s", tt.in, got, tt.out)
		}
	}
}

func TestParseSide(t *testing.T) {
	for _, s := range []Side{Buy, Sell, Short, Cover, Unknown} {
		got, err := ParseSide(string(s))
		if err != nil || got != s {
			t.Errorf("ParseSide(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseSide("Bought"); err == nil {
		t.Errorf("ParseSide accepted a broker phrase")
	}
}
