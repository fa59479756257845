package tradetools

import "testing"

func TestParseClock12(t *testing.T) {
	tests := []struct {
		input    string
		expected Clock
		err      bool
	}{
		{"09:30 AM", NewClock(9, 30, 0), false},
		{"03:45 PM", NewClock(15, 45, 0), false},
		{"12:00 PM", NewClock(12, 0, 0), false},  // noon
		{"12:30 AM", NewClock(0, 30, 0), false},  // past midnight
		{"9:30:05 AM", NewClock(9, 30, 5), false},
		{"11:59:59 PM", NewClock(23, 59, 59), false},
		{"25:00 AM", Clock{}, true},
		{"09:30", Clock{}, true},
		{"", Clock{}, true},
	}
	for _, tt := range tests {
		got, err := ParseClock12(tt.input)
		if (err != nil) != tt.err {
			t.Errorf("ParseClock12(%q) error = %v, want err=%v", tt.input, err, tt.err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseClock12(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestClockString(t *testing.T) {
	if got := NewClock(9, 30, 5).String(); got != "09:30:05" {
		t.Errorf("String() = %q, want %q", got, "09:30:05")
	}
	if got := NewClock(0, 0, 0).String(); got != "00:00:00" {
		t.Errorf("String() = %q, want %q", got, "00:00:00")
	}
}

func TestClockAdd(t *testing.T) {
	tests := []struct {
		start    Clock
		seconds  int
		expected string
	}{
		{NewClock(9, 30, 5), 1, "09:30:06"},
		{NewClock(9, 30, 59), 1, "09:31:00"},  // minute rollover
		{NewClock(9, 59, 59), 1, "10:00:00"},  // hour rollover
		{NewClock(23, 59, 59), 1, "00:00:00"}, // wraps around midnight
	}
	for _, tt := range tests {
		if got := tt.start.Add(tt.seconds).String(); got != tt.expected {
			t.Errorf("%v.Add(%d) = %q, want %q", tt.start, tt.seconds, got, tt.expected)
		}
	}
}
