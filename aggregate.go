package tradetools

import "github.com/shopspring/decimal"

// Aggregation selects how raw executions are deduplicated before fees and
// formatting. A run applies exactly one of the two behaviors, matching
// the richness of keys its adapter and target platform work with; the
// state either behavior keeps is scoped to that one call and never shared
// across runs.
type Aggregation int

const (
	// MergeByKey sums the quantities of executions sharing the full
	// (day, clock, symbol, price, side) identity into one record.
	MergeByKey Aggregation = iota
	// AdjustCollisions keeps every execution distinct and disambiguates
	// records that collide on (day, clock) by advancing the earlier one
	// by one second.
	AdjustCollisions
)

// commission is the fixed commission reported on every canonical
// execution, always rendered "0.00".
var commission = decimal.New(0, -2)

func canonical(x RawExecution) CanonicalExecution {
	return CanonicalExecution{RawExecution: x, Commission: commission}
}

// Merge groups raw executions by their full identity key and sums the
// quantities within a group, modeling partial fills reported as separate
// lines at the same timestamp and price. First-seen order is preserved.
//
// Merge is commutative within a group and idempotent: merging an already
// merged batch is a no-op.
func Merge(in []RawExecution) []CanonicalExecution {
	out := make([]CanonicalExecution, 0, len(in))
	index := make(map[mergeKey]int, len(in))
	for _, x := range in {
		key := x.mergeKey()
		if i, seen := index[key]; seen {
			out[i].Quantity += x.Quantity
			continue
		}
		index[key] = len(out)
		out = append(out, canonical(x))
	}
	return out
}

// ResolveCollisions keeps every execution as its own record, in input
// order, and resolves timestamp collisions: when an execution arrives
// with an already-seen (day, clock), the previously recorded execution is
// advanced by one second before the new one is appended.
//
// Each collision event adjusts exactly one earlier record. Three or more
// executions colliding on the same original timestamp can therefore still
// produce duplicates; that limitation is inherited from the import
// formats this models and is deliberately not papered over with a
// chained counter.
func ResolveCollisions(in []RawExecution) []CanonicalExecution {
	out := make([]CanonicalExecution, 0, len(in))
	last := make(map[stampKey]int, len(in))
	for _, x := range in {
		key := x.stampKey()
		if i, seen := last[key]; seen {
			out[i].Clock = out[i].Clock.Add(1)
		}
		last[key] = len(out)
		out = append(out, canonical(x))
	}
	return out
}

// Aggregate applies the selected behavior to the batch.
func (a Aggregation) Aggregate(in []RawExecution) []CanonicalExecution {
	if a == MergeByKey {
		return Merge(in)
	}
	return ResolveCollisions(in)
}
