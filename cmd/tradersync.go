package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradetools"
	"github.com/etnz/tradetools/etrade"
	"github.com/google/subcommands"
)

type tradersyncCmd struct {
	convertCmd
}

func (*tradersyncCmd) Name() string { return "tradersync" }
func (*tradersyncCmd) Synopsis() string {
	return "convert broker executions to the TraderSync generic import format"
}
func (*tradersyncCmd) Usage() string {
	return `tt tradersync [-i <file>] [-o <file>] [-data-uri]

  Converts E*Trade Web Alerts into the TraderSync "Generic Import"
  format. Sides collapse to Buy/Sell, executions that collide on the
  same timestamp are spread one second apart, and the SEC fee is owed on
  sells only.

Usage Examples:
# Convert an alerts dump to a CSV ready for TraderSync.
$ tt tradersync -i alerts.txt -o tradersync_import.csv

`
}

func (p *tradersyncCmd) SetFlags(f *flag.FlagSet) { p.setFlags(f) }

func (p *tradersyncCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.run(tradetools.TraderSync(), etrade.Alerts{})
}
