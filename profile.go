package tradetools

import (
	"fmt"
	"io"
)

// Profile is the complete configuration of one conversion target: the
// side taxonomy, the aggregation behavior, the fee eligibility rule and
// the output format of a journaling platform. Everything a run needs is
// in the profile or in the arguments of Convert; there is no ambient
// state.
type Profile struct {
	// Name of the target platform, e.g. "tradervue".
	Name string
	// TwoWay collapses the four-way side taxonomy (Cover becomes Buy,
	// Short becomes Sell) before aggregation. The collapse changes fee
	// eligibility, so it is always paired with the matching Fees set.
	TwoWay bool
	// Aggregation selects merge-by-key or collision adjustment.
	Aggregation Aggregation
	// Fees is the platform's regulatory fee schedule.
	Fees FeeSchedule
	// Formatter renders the output lines.
	Formatter Formatter
	// MediaType of the downloadable encoding, MediaText or MediaCSV.
	MediaType string
	// Filename suggested for the downloadable encoding.
	Filename string
}

// Tradervue returns the profile of the Tradervue generic import format:
// information-preserving four-way sides, partial fills merged by the full
// identity key, SEC fee owed on Sell and Short.
func Tradervue() Profile {
	return Profile{
		Name:        "tradervue",
		Aggregation: MergeByKey,
		Fees:        FeeSchedule{SECEligible: map[Side]bool{Sell: true, Short: true}},
		Formatter:   Formatter{DayLayout: ShortDayLayout, SideColumn: "Side", FeeColumn: "TransFee"},
		MediaType:   MediaText,
		Filename:    "tradervue_generic_import.txt",
	}
}

// TraderSync returns the profile of the TraderSync generic import format:
// two-way sides, timestamp-collision adjustment, four-digit years, SEC
// fee owed on Sell only (which, after the collapse, also covers shorts).
func TraderSync() Profile {
	return Profile{
		Name:        "tradersync",
		TwoWay:      true,
		Aggregation: AdjustCollisions,
		Fees:        FeeSchedule{SECEligible: map[Side]bool{Sell: true}},
		Formatter:   Formatter{DayLayout: LongDayLayout, SideColumn: "Buy/Sell", FeeColumn: "Fee"},
		MediaType:   MediaCSV,
		Filename:    "tradersync_import.csv",
	}
}

// Fixer returns the profile of the Tradervue import fixer: the Tradervue
// output format, but with two-way sides and timestamp-collision
// adjustment for imports whose source only keys executions by timestamp.
func Fixer() Profile {
	return Profile{
		Name:        "fixer",
		TwoWay:      true,
		Aggregation: AdjustCollisions,
		Fees:        FeeSchedule{SECEligible: map[Side]bool{Sell: true}},
		Formatter:   Formatter{DayLayout: ShortDayLayout, SideColumn: "Side", FeeColumn: "TransFee"},
		MediaType:   MediaText,
		Filename:    "trade_results.txt",
	}
}

// Convert runs the whole normalization pipeline on one input stream:
// import through the broker adapter, side projection, aggregation, fee
// computation and formatting. It is a pure function of the input text
// plus the profile and adapter; the only error it surfaces is an
// unreadable input stream.
func (p Profile) Convert(imp Importer, r io.Reader) (*Document, error) {
	raws, err := imp.Import(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s input: %w", imp.Name(), err)
	}
	if p.TwoWay {
		for i := range raws {
			raws[i].Side = raws[i].Side.Collapse()
		}
	}
	execs := p.Aggregation.Aggregate(raws)
	p.Fees.Apply(execs)
	return p.Formatter.Document(execs), nil
}
