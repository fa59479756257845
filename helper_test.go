package tradetools

import "github.com/shopspring/decimal"

// dec is a helper for tests to build exact decimals from literals.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// on is a helper for tests to build a Day from its short form.
func on(s string) Day { return MustDay(ShortDayLayout, s) }

// raw is a helper for tests to build a RawExecution in one line.
func raw(day string, clock Clock, side Side, qty int, symbol, price string) RawExecution {
	return RawExecution{
		Day:      on(day),
		Clock:    clock,
		Side:     side,
		Quantity: qty,
		Symbol:   symbol,
		Price:    dec(price),
	}
}
