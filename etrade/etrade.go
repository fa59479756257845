// Package etrade imports executions from the E*Trade Web Alerts format:
// free text where each execution is reported on one line such as
//
//	01/02/24 09:30 AM ET Buy 100 ABC Executed @ $10.00
//
// Only lines matching that grammar produce a record; everything else in
// the alert dump (cancellations, rejections, chatter) is skipped without
// an error.
package etrade

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/tradetools"
	"github.com/shopspring/decimal"
)

// timestampLayout combines the alert's day, 12-hour clock and AM/PM
// marker into one parseable timestamp.
const timestampLayout = "01/02/06 03:04 PM"

// Alerts is the broker adapter for E*Trade Web Alerts text.
type Alerts struct{}

// Name implements tradetools.Importer.
func (Alerts) Name() string { return "etrade" }

// Import reads the alert text line by line and returns the accepted
// executions in input order. Lines mentioning "Cancelled" or "Rejected"
// are excluded before parsing and never produce a record, even when they
// would otherwise match the grammar.
func (Alerts) Import(r io.Reader) ([]tradetools.RawExecution, error) {
	var out []tradetools.RawExecution
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "Cancelled") || strings.Contains(line, "Rejected") {
			continue
		}
		if x, ok := ParseLine(line); ok {
			out = append(out, x)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read alerts text: %w", err)
	}
	return out, nil
}

// ParseLine extracts one execution from one line of alert text.
//
// The grammar is, token-wise:
//
//	DATE TIME AM|PM "ET" ACTION QUANTITY SYMBOL ["Executed"] "@" "$"PRICE ["Executed"]
//
// with ACTION one of "Buy", "Buy to cover", "Sell", "Sell Short". The
// execution may start anywhere in the line; trailing tokens are ignored.
// A line that matches nowhere yields ok=false, which is normal control
// flow, not an error.
func ParseLine(line string) (tradetools.RawExecution, bool) {
	fields := strings.Fields(line)
	for i, f := range fields {
		if !looksLikeDay(f) {
			continue
		}
		if x, ok := match(fields[i:]); ok {
			return x, true
		}
	}
	return tradetools.RawExecution{}, false
}

// match runs the token grammar against fields, which must start at the
// DATE token.
func match(fields []string) (tradetools.RawExecution, bool) {
	t := scanner{fields: fields}
	var x tradetools.RawExecution

	day := t.next()
	clock := t.next()
	ampm := t.next()
	if ampm != "AM" && ampm != "PM" {
		return x, false
	}
	if !looksLikeClock(clock) || !t.literal("ET") {
		return x, false
	}
	on, err := time.Parse(timestampLayout, day+" "+clock+" "+ampm)
	if err != nil {
		return x, false
	}
	x.Day = tradetools.NewDay(on.Date())
	x.Clock = tradetools.NewClock(on.Clock())

	side, ok := t.action()
	if !ok {
		return x, false
	}
	x.Side = side

	qty, err := strconv.Atoi(t.next())
	if err != nil {
		return x, false
	}
	x.Quantity = qty

	x.Symbol = t.next()
	if !isUpper(x.Symbol) {
		return x, false
	}

	t.literal("Executed") // optional
	if !t.literal("@") {
		return x, false
	}
	price, ok := parsePrice(t.next())
	if !ok {
		return x, false
	}
	x.Price = price

	return x, x.Valid()
}

// scanner walks whitespace-separated tokens.
type scanner struct {
	fields []string
	pos    int
}

// next consumes and returns the next token, or "" when exhausted.
func (t *scanner) next() string {
	if t.pos >= len(t.fields) {
		return ""
	}
	f := t.fields[t.pos]
	t.pos++
	return f
}

// literal consumes the next token only if it equals lit.
func (t *scanner) literal(lit string) bool {
	if t.pos < len(t.fields) && t.fields[t.pos] == lit {
		t.pos++
		return true
	}
	return false
}

// action consumes a broker action phrase and returns its canonical side.
// "Buy to cover" and "Sell Short" span multiple tokens, so the single
// "Buy"/"Sell" reading only wins when the longer phrase is absent.
func (t *scanner) action() (tradetools.Side, bool) {
	switch t.next() {
	case "Buy":
		if t.literal("to") {
			if t.literal("cover") {
				return tradetools.Cover, true
			}
			return "", false
		}
		return tradetools.Buy, true
	case "Sell":
		if t.literal("Short") {
			return tradetools.Short, true
		}
		return tradetools.Sell, true
	}
	return "", false
}

// looksLikeDay reports whether the token has the MM/DD/YY shape.
func looksLikeDay(s string) bool {
	if len(s) != 8 || s[2] != '/' || s[5] != '/' {
		return false
	}
	return isDigits(s[:2]) && isDigits(s[3:5]) && isDigits(s[6:])
}

// looksLikeClock reports whether the token has the HH:MM shape.
func looksLikeClock(s string) bool {
	return len(s) == 5 && s[2] == ':' && isDigits(s[:2]) && isDigits(s[3:])
}

// parsePrice parses a "$12.34" token into an exact decimal, preserving
// the scale the broker reported.
func parsePrice(s string) (decimal.Decimal, bool) {
	digits, found := strings.CutPrefix(s, "$")
	if !found || !looksLikeAmount(digits) {
		return decimal.Decimal{}, false
	}
	price, err := decimal.NewFromString(strings.TrimSuffix(digits, "."))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return price, true
}

// looksLikeAmount reports whether s is digits with at most one decimal
// point, possibly trailing: "10", "10." and "10.00" all qualify.
func looksLikeAmount(s string) bool {
	whole, frac, dotted := strings.Cut(s, ".")
	if !isDigits(whole) || whole == "" {
		return false
	}
	return !dotted || frac == "" || isDigits(frac)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func isUpper(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return s != ""
}
