package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tradetools/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. It must run before
// flag parsing: when invoked by the shell it prints candidates and exits.
func completion() {
	convertFlags := map[string]complete.Predictor{
		"i":        predict.Files("*"),
		"o":        predict.Files("*"),
		"data-uri": predict.Nothing,
	}
	tradervueFlags := map[string]complete.Predictor{
		"i":        predict.Files("*"),
		"o":        predict.Files("*"),
		"data-uri": predict.Nothing,
		"broker":   predict.Set{"etrade", "poweretrade"},
	}
	tt := &complete.Command{
		Sub: map[string]*complete.Command{
			"tradervue":  {Flags: tradervueFlags},
			"tradersync": {Flags: convertFlags},
			"fixer":      {Flags: convertFlags},
			"topic":      {Args: predict.Set{"readme", "brokers", "fees", "fixer", "tradersync", "tradervue"}},
		},
	}
	tt.Complete("tt")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
