package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradetools"
	"github.com/etnz/tradetools/etrade"
	"github.com/google/subcommands"
)

type fixerCmd struct {
	convertCmd
}

func (*fixerCmd) Name() string { return "fixer" }
func (*fixerCmd) Synopsis() string {
	return "fix an alerts dump for Tradervue imports keyed by timestamp only"
}
func (*fixerCmd) Usage() string {
	return `tt fixer [-i <file>] [-o <file>] [-data-uri]

  Converts E*Trade Web Alerts into the Tradervue output format, but for
  imports whose executions are keyed by timestamp alone: sides collapse
  to Buy/Sell and colliding timestamps are spread one second apart
  instead of being merged.

Usage Examples:
# Fix an alerts dump.
$ tt fixer -i alerts.txt

`
}

func (p *fixerCmd) SetFlags(f *flag.FlagSet) { p.setFlags(f) }

func (p *fixerCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.run(tradetools.Fixer(), etrade.Alerts{})
}
