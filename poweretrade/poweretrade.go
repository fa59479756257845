// Package poweretrade imports executions from the Power E*Trade web app
// CSV export. The export carries one metadata line, then a header row
// with at least the Symbol, Status, Fill, Description and Time columns,
// then one row per order. Rows whose Fill column holds the "--" sentinel
// describe orders that never executed and are skipped.
package poweretrade

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/tradetools"
	"github.com/shopspring/decimal"
)

// noFill is the placeholder the export uses for orders without an
// execution.
const noFill = "--"

// dayLayout and clockLayout split the export's Time column, e.g.
// "01/02/2024, 9:30:05 AM".
const (
	dayLayout   = "01/02/2006"
	clockLayout = "3:04:05 PM"
)

// DayLayout is the four-digit-year layout this broker reports days in.
// Output built from this source renders days the same way.
const DayLayout = tradetools.LongDayLayout

// Export is the broker adapter for Power E*Trade CSV exports.
type Export struct{}

// Name implements tradetools.Importer.
func (Export) Name() string { return "poweretrade" }

// Import reads the export and returns the accepted executions in row
// order. Per-row problems (no fill, missing fields, unparseable values,
// underivable sides beyond the Unknown sentinel) absorb locally: the row
// is skipped and the run still succeeds. Only an unreadable stream or a
// header missing a required column aborts.
func (Export) Import(r io.Reader) ([]tradetools.RawExecution, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read power e*trade export: %w", err)
	}
	// One leading metadata row precedes the header row.
	if len(records) < 2 {
		return nil, nil
	}
	cols, err := index(records[1])
	if err != nil {
		return nil, err
	}

	var out []tradetools.RawExecution
	for _, record := range records[2:] {
		if x, ok := cols.row(record); ok {
			out = append(out, x)
		}
	}
	return out, nil
}

// columns holds the positions of the required columns in the header row.
type columns struct {
	symbol, fill, description, clock int
}

func index(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}
	c := columns{}
	for _, want := range []struct {
		name string
		at   *int
	}{
		{"Symbol", &c.symbol},
		{"Fill", &c.fill},
		{"Description", &c.description},
		{"Time", &c.clock},
	} {
		i, ok := pos[want.name]
		if !ok {
			return c, fmt.Errorf("power e*trade export has no %q column", want.name)
		}
		*want.at = i
	}
	return c, nil
}

// row extracts one execution from one data row, or ok=false when the row
// describes no execution.
func (c columns) row(record []string) (tradetools.RawExecution, bool) {
	var x tradetools.RawExecution
	for _, i := range []int{c.symbol, c.fill, c.description, c.clock} {
		if i >= len(record) {
			return x, false
		}
	}

	fill := strings.TrimSpace(record[c.fill])
	if fill == noFill {
		return x, false
	}
	qty, price, ok := splitFill(fill)
	if !ok {
		return x, false
	}
	x.Quantity = qty
	x.Price = price

	x.Symbol = strings.TrimSpace(record[c.symbol])
	x.Side = deriveSide(record[c.description])

	day, clock, ok := splitTime(record[c.clock])
	if !ok {
		return x, false
	}
	x.Day = day
	x.Clock = clock

	return x, x.Valid()
}

// splitFill breaks a "100 @ 10.00" fill field into quantity and exact
// price. Anything without the "@" pattern counts as a no-fill sentinel.
func splitFill(fill string) (int, decimal.Decimal, bool) {
	qtyPart, pricePart, found := strings.Cut(fill, "@")
	if !found {
		return 0, decimal.Decimal{}, false
	}
	qty, ok := firstNumber(qtyPart)
	if !ok {
		return 0, decimal.Decimal{}, false
	}
	price, err := decimal.NewFromString(strings.TrimSpace(pricePart))
	if err != nil {
		return 0, decimal.Decimal{}, false
	}
	return qty, price, true
}

// firstNumber returns the first run of digits in s.
func firstNumber(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			s = s[:i]
			break
		}
	}
	if start < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[start:])
	return n, err == nil
}

// deriveSide maps the free-text order description to a canonical side by
// combining the directional verb with the position-effect qualifier.
// Any other combination maps to the explicit Unknown sentinel, which is
// still emitted downstream.
func deriveSide(description string) tradetools.Side {
	buy := strings.Contains(description, "Buy")
	sell := strings.Contains(description, "Sell")
	opening := strings.Contains(description, "to Open")
	closing := strings.Contains(description, "to Close")
	switch {
	case sell && opening:
		return tradetools.Short
	case buy && closing:
		return tradetools.Cover
	case buy && opening:
		return tradetools.Buy
	case sell && closing:
		return tradetools.Sell
	}
	return tradetools.Unknown
}

// splitTime breaks the "01/02/2024, 9:30:05 AM" Time column into its day
// and wall-clock parts.
func splitTime(field string) (tradetools.Day, tradetools.Clock, bool) {
	dayPart, clockPart, found := strings.Cut(field, ",")
	if !found {
		return tradetools.Day{}, tradetools.Clock{}, false
	}
	on, err := time.Parse(dayLayout, strings.TrimSpace(dayPart))
	if err != nil {
		return tradetools.Day{}, tradetools.Clock{}, false
	}
	at, err := time.Parse(clockLayout, strings.TrimSpace(clockPart))
	if err != nil {
		return tradetools.Day{}, tradetools.Clock{}, false
	}
	return tradetools.NewDay(on.Date()), tradetools.NewClock(at.Clock()), true
}
