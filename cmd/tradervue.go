package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradetools"
	"github.com/etnz/tradetools/etrade"
	"github.com/etnz/tradetools/poweretrade"
	"github.com/google/subcommands"
)

type tradervueCmd struct {
	convertCmd
	broker string
}

func (*tradervueCmd) Name() string { return "tradervue" }
func (*tradervueCmd) Synopsis() string {
	return "convert broker executions to the Tradervue generic import format"
}
func (*tradervueCmd) Usage() string {
	return `tt tradervue [-broker <broker>] [-i <file>] [-o <file>] [-data-uri]

  Converts broker execution reports into the Tradervue "Generic Import
  Format". Partial fills sharing the same timestamp, symbol, price and
  side are merged into one execution, sides keep the full
  Buy/Sell/Short/Cover taxonomy, and regulatory fees are computed per
  execution (SEC fee on Sell and Short).

Usage Examples:
# Convert an E*Trade Web Alerts dump.
$ tt tradervue -i alerts.txt

# Convert a Power E*Trade CSV export to a file.
$ tt tradervue -broker poweretrade -i orders.csv -o import.txt

`
}

func (p *tradervueCmd) SetFlags(f *flag.FlagSet) {
	p.setFlags(f)
	f.StringVar(&p.broker, "broker", "etrade", "Broker source format: etrade or poweretrade.")
}

func (p *tradervueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile := tradetools.Tradervue()

	var imp tradetools.Importer
	switch p.broker {
	case "etrade":
		imp = etrade.Alerts{}
	case "poweretrade":
		imp = poweretrade.Export{}
		// This export reports four-digit years; render them back as such.
		profile.Formatter.DayLayout = poweretrade.DayLayout
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown broker %q (want etrade or poweretrade)\n", p.broker)
		return subcommands.ExitUsageError
	}

	return p.run(profile, imp)
}
