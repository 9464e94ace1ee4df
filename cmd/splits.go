package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vestfolio/vestfolio/renderer"
)

// splitsCmd holds the flags for the 'splits' subcommand.
type splitsCmd struct {
	splitsFile string
}

func (*splitsCmd) Name() string     { return "splits" }
func (*splitsCmd) Synopsis() string { return "display the split table as the converter sees it" }
func (*splitsCmd) Usage() string {
	return `vfc splits -splits <splits.csv>

  Parses the split table and displays it in scan order, most recent
  first. A table that does not parse here will not convert either.
`
}

func (c *splitsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.splitsFile, "splits", "", "Split table file (CSV).")
}

func (c *splitsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.splitsFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -splits <splits.csv> is required")
		return subcommands.ExitUsageError
	}

	splits, err := loadSplits(c.splitsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SplitsMarkdown(splits))
	return subcommands.ExitSuccess
}
