package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/vestfolio/vestfolio/cmd"
)

// completion describes the CLI for shell completion. Complete returns
// immediately on a normal run.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"convert": {
			Flags: map[string]complete.Predictor{
				"i":                 predict.Files("*.json"),
				"splits":            predict.Files("*.csv"),
				"o":                 predict.Dirs("*"),
				"forex-as-exchange": predict.Nothing,
			},
		},
		"show": {
			Flags: map[string]complete.Predictor{
				"i":                 predict.Files("*.json"),
				"splits":            predict.Files("*.csv"),
				"forex-as-exchange": predict.Nothing,
			},
		},
		"splits": {
			Flags: map[string]complete.Predictor{
				"splits": predict.Files("*.csv"),
			},
		},
		"topic": {
			Args: predict.Something,
		},
	},
}

func main() {
	completion.Complete("vfc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
