package tradetools

import "fmt"

// Side is the canonical taxonomy for the direction of an execution.
//
// Brokers report the direction with inconsistent phrases ("Buy to cover",
// "Sell Short", "Sold 100 to Open", ...). Adapters map every phrase to one
// of these values; nothing downstream ever sees a broker phrase.
type Side string

const (
	// Buy opens or increases a long position.
	Buy Side = "Buy"
	// Sell closes or reduces a long position.
	Sell Side = "Sell"
	// Short opens or increases a short position.
	Short Side = "Short"
	// Cover closes or reduces a short position.
	Cover Side = "Cover"
	// Unknown marks an execution whose direction could not be derived.
	// It is still emitted downstream, but is never eligible for the
	// regulatory fee: no eligibility rule exists for it.
	Unknown Side = "Unknown"
)

// Collapse projects the four-way taxonomy onto the two-way one used by
// platforms that only distinguish buys from sells: Cover becomes Buy and
// Short becomes Sell. The projection loses the position effect, which is
// why it is an explicit per-profile choice and never implicit.
func (s Side) Collapse() Side {
	switch s {
	case Cover:
		return Buy
	case Short:
		return Sell
	default:
		return s
	}
}

// ParseSide parses a canonical side label.
func ParseSide(str string) (Side, error) {
	switch Side(str) {
	case Buy, Sell, Short, Cover, Unknown:
		return Side(str), nil
	default:
		return "", fmt.Errorf("unknown side: %q", str)
	}
}
