package tradetools

import (
	"fmt"
	"time"
)

// Day layouts used by the broker sources and the journaling platforms.
const (
	// ShortDayLayout is the two-digit-year US format used by E*Trade Web
	// Alerts and by the Tradervue generic import.
	ShortDayLayout = "01/02/06"
	// LongDayLayout is the four-digit-year US format used by Power E*Trade
	// exports and by the TraderSync generic import.
	LongDayLayout = "01/02/2006"
)

// Day represents a calendar day with no time component.
type Day struct {
	y int
	m time.Month
	d int
}

// NewDay returns a normalized Day for the given year, month, and day.
func NewDay(year int, month time.Month, day int) Day {
	d := Day{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a canonical representation of the day (midnight UTC), so that
// two equal days always compare equal.
func (d Day) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the day.
func (d Day) Year() int { return d.y }

// Month returns the month of the day.
func (d Day) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Day) Day() int { return d.d }

// IsZero reports whether the day is the zero value.
func (d Day) IsZero() bool { return d == Day{} }

// Before reports whether the day d is before x.
func (d Day) Before(x Day) bool { return d.time().Before(x.time()) }

// Format renders the day in the given layout.
func (d Day) Format(layout string) string { return d.time().Format(layout) }

// String renders the day in the short US layout, the one raw alerts carry.
func (d Day) String() string { return d.Format(ShortDayLayout) }

// ParseDay parses a Day from a string in the given layout.
func ParseDay(layout, str string) (Day, error) {
	on, err := time.Parse(layout, str)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q want format %q: %w", str, layout, err)
	}
	return NewDay(on.Date()), nil
}

// MustDay is like ParseDay but panics on error. It is meant for constants
// and tests.
func MustDay(layout, str string) Day {
	d, err := ParseDay(layout, str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
