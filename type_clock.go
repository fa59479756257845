package tradetools

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Clock represents a wall-clock time of day with second precision.
type Clock struct {
	s int // seconds since midnight, always in [0, secondsPerDay)
}

// NewClock returns a Clock for the given hour, minute and second.
// Values are normalized modulo one day, so 23:59:59 plus one second wraps
// to 00:00:00 without touching the day.
func NewClock(hour, min, sec int) Clock {
	s := (hour*3600 + min*60 + sec) % secondsPerDay
	if s < 0 {
		s += secondsPerDay
	}
	return Clock{s: s}
}

// Hour returns the hour within the day, in [0, 23].
func (c Clock) Hour() int { return c.s / 3600 }

// Minute returns the minute within the hour, in [0, 59].
func (c Clock) Minute() int { return (c.s / 60) % 60 }

// Second returns the second within the minute, in [0, 59].
func (c Clock) Second() int { return c.s % 60 }

// Add returns a new Clock advanced by the given number of seconds,
// wrapping around midnight.
func (c Clock) Add(seconds int) Clock { return NewClock(0, 0, c.s+seconds) }

// Before reports whether the clock c is earlier in the day than x.
func (c Clock) Before(x Clock) bool { return c.s < x.s }

// String renders the clock in the 24-hour HH:MM:SS form used by every
// generic import format in scope.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
}

// ParseClock12 parses a 12-hour wall-clock string such as "09:30 AM" or
// "9:30:05 PM" into a Clock.
func ParseClock12(str string) (Clock, error) {
	for _, layout := range []string{"03:04 PM", "3:04:05 PM"} {
		if on, err := time.Parse(layout, str); err == nil {
			return NewClock(on.Clock()), nil
		}
	}
	return Clock{}, fmt.Errorf("invalid wall-clock time %q", str)
}

// MustClock is like ParseClock12 but panics on error. It is meant for tests.
func MustClock(str string) Clock {
	c, err := ParseClock12(str)
	if err != nil {
		panic(err.Error())
	}
	return c
}
