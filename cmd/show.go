package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vestfolio/vestfolio/renderer"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	exportFile      string
	splitsFile      string
	forexAsExchange bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the reconciled report on the terminal" }
func (*showCmd) Usage() string {
	return `vfc show -i <export.json> [-splits <splits.csv>] [-forex-as-exchange]

  Runs the same conversion as 'convert' but renders the result in the
  terminal instead of writing CSV files. Useful to review a statement
  before exporting it.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "i", "", "Broker export file (JSON).")
	f.StringVar(&c.splitsFile, "splits", "", "Split table file (CSV). Optional.")
	f.BoolVar(&c.forexAsExchange, "forex-as-exchange", false, "Classify outgoing wires as currency conversions instead of money transfers.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.exportFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <export.json> is required")
		return subcommands.ExitUsageError
	}

	report, err := loadReport(c.exportFile, c.splitsFile, c.forexAsExchange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
