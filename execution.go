package tradetools

import (
	"io"

	"github.com/shopspring/decimal"
)

// RawExecution is one fill of an order as extracted from a broker source,
// before aggregation. The price keeps the decimal scale the broker
// reported ("10.00" stays "10.00", never "10").
type RawExecution struct {
	Day      Day
	Clock    Clock
	Side     Side
	Quantity int
	Symbol   string
	Price    decimal.Decimal
}

// Valid reports whether the record satisfies the invariants every
// RawExecution must hold: a positive quantity, a non-empty symbol, a
// non-negative price and a side from the canonical taxonomy. Adapters
// discard candidates that do not, silently.
func (x RawExecution) Valid() bool {
	if x.Quantity <= 0 || x.Symbol == "" || x.Price.IsNegative() {
		return false
	}
	switch x.Side {
	case Buy, Sell, Short, Cover, Unknown:
		return true
	}
	return false
}

// mergeKey identifies the fills of a single logical order slice: same day,
// time, symbol, price and side. The price takes part in its scale-keeping
// string form so that "10.0" and "10.00" stay distinct, like the source
// formats keep them distinct.
type mergeKey struct {
	day    Day
	clock  Clock
	symbol string
	price  string
	side   Side
}

func (x RawExecution) mergeKey() mergeKey {
	return mergeKey{day: x.Day, clock: x.Clock, symbol: x.Symbol, price: Fixed(x.Price), side: x.Side}
}

// stampKey identifies executions by timestamp alone. It is the identity
// used for collision resolution when the richer merge key is not in play.
type stampKey struct {
	day   Day
	clock Clock
}

func (x RawExecution) stampKey() stampKey {
	return stampKey{day: x.Day, clock: x.Clock}
}

// CanonicalExecution is the aggregated, fee-bearing form of an execution.
// It is created by aggregation, mutated only by fee computation, and
// consumed exactly once by formatting.
type CanonicalExecution struct {
	RawExecution

	// Commission is always 0.00: the brokers in scope do not charge a
	// separate commission on the data this engine targets.
	Commission decimal.Decimal
	// TransactionFee is the sum of the activity and regulatory fees.
	TransactionFee decimal.Decimal
}

// Notional returns the dollar value of the execution (quantity × price).
func (x CanonicalExecution) Notional() Money {
	return USD(x.Price.Mul(decimal.NewFromInt(int64(x.Quantity))))
}

// Importer extracts raw executions from one broker source format.
//
// Implementations absorb every per-record problem locally: a line or row
// that does not describe a valid execution yields no record and no error.
// The only error an Importer returns is an unreadable input stream.
type Importer interface {
	// Name identifies the broker source, e.g. "etrade".
	Name() string
	// Import reads the whole source and returns the accepted executions
	// in input order.
	Import(r io.Reader) ([]RawExecution, error)
}
