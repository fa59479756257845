package tradetools

import (
	"testing"
	"time"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		layout   string
		input    string
		expected Day
		err      bool
	}{
		{ShortDayLayout, "01/02/24", NewDay(2024, time.January, 2), false},
		{ShortDayLayout, "12/31/99", NewDay(1999, time.December, 31), false},
		{LongDayLayout, "01/02/2024", NewDay(2024, time.January, 2), false},
		{ShortDayLayout, "2024-01-02", Day{}, true},
		{ShortDayLayout, "13/45/24", Day{}, true},
		{ShortDayLayout, "", Day{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDay(tt.layout, tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseDay(%q, %q) error = %v, want err=%v", tt.layout, tt.input, err, tt.err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDay(%q, %q) = %v, want %v", tt.layout, tt.input, got, tt.expected)
		}
	}
}

func TestDayFormat(t *testing.T) {
	d := NewDay(2024, time.January, 2)
	if got := d.Format(ShortDayLayout); got != "01/02/24" {
		t.Errorf("short format = %q, want %q", got, "01/02/24")
	}
	if got := d.Format(LongDayLayout); got != "01/02/2024" {
		t.Errorf("long format = %q, want %q", got, "01/02/2024")
	}
}

// Days are used as map keys by the aggregator; the same day must always
// compare equal.
func TestDayComparable(t *testing.T) {
	if NewDay(2024, time.January, 2) != MustDay(ShortDayLayout, "01/02/24") {
		t.Errorf("same day compares unequal")
	}
}
