package tradetools

import "github.com/shopspring/decimal"

// Rates and cap of the regulatory fee schedule being modeled.
var (
	// tafRate is the FINRA trading activity fee, per share.
	tafRate = decimal.RequireFromString("0.000145")
	// tafCap is the maximum FINRA TAF per execution.
	tafCap = decimal.RequireFromString("7.27")
	// secRate is the SEC fee, per notional dollar.
	secRate = decimal.RequireFromString("0.000008")
)

// FeeSchedule computes the regulatory transaction fees of an execution.
//
// Which sides owe the SEC fee differs between the journaling platforms:
// under the four-way taxonomy both Sell and Short qualify, under the
// two-way one only Sell does. The eligibility set is therefore explicit
// per profile, never inferred.
type FeeSchedule struct {
	// SECEligible holds the sides that owe the SEC fee.
	SECEligible map[Side]bool
}

// ceilTo rounds d up (toward +infinity) to the given number of decimal
// places, and always renders at exactly that scale: ceilTo(0.029, 4) is
// 0.0290, not 0.029. Rounding up at a fixed scale is a contractual
// requirement of the fee schedule, not a style choice.
func ceilTo(d decimal.Decimal, places int32) decimal.Decimal {
	return decimal.New(d.Shift(places).Ceil().IntPart(), -places)
}

// ActivityFee returns the FINRA TAF for an execution of the given share
// quantity: quantity × rate, rounded up to 4 decimal places, capped at
// 7.27. It applies to every execution regardless of side.
func (s FeeSchedule) ActivityFee(quantity int) decimal.Decimal {
	fee := ceilTo(tafRate.Mul(decimal.NewFromInt(int64(quantity))), 4)
	if fee.GreaterThan(tafCap) {
		return tafCap
	}
	return fee
}

// RegulatoryFee returns the SEC fee for an execution: quantity × price ×
// rate, rounded up to the next cent. Sides outside the schedule's
// eligibility set owe nothing.
func (s FeeSchedule) RegulatoryFee(quantity int, price decimal.Decimal, side Side) decimal.Decimal {
	if !s.SECEligible[side] {
		return decimal.Zero
	}
	notional := price.Mul(decimal.NewFromInt(int64(quantity)))
	return ceilTo(secRate.Mul(notional), 2)
}

// TransactionFee returns the total regulatory fee of an execution: the
// activity fee plus the regulatory fee.
func (s FeeSchedule) TransactionFee(quantity int, price decimal.Decimal, side Side) decimal.Decimal {
	return s.ActivityFee(quantity).Add(s.RegulatoryFee(quantity, price, side))
}

// Apply computes and sets the transaction fee on every execution.
func (s FeeSchedule) Apply(execs []CanonicalExecution) {
	for i := range execs {
		x := &execs[i]
		x.TransactionFee = s.TransactionFee(x.Quantity, x.Price, x.Side)
	}
}
