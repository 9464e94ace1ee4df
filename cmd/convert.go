package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vestfolio/vestfolio/renderer"
)

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct {
	exportFile      string
	splitsFile      string
	outDir          string
	forexAsExchange bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a broker export into per-category CSV sheets" }
func (*convertCmd) Usage() string {
	return `vfc convert -i <export.json> [-splits <splits.csv>] [-o <dir>] [-forex-as-exchange]

  Reads a yearly equity award export, reconciles it against the split
  table, and writes one CSV file per category into the output directory.
  The conversion aborts on the first record it cannot account for.

Usage Examples:
# Convert the 2022 export.
$ vfc convert -i export-2022.json -splits splits.csv -o out/2022

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.exportFile, "i", "", "Broker export file (JSON).")
	f.StringVar(&c.splitsFile, "splits", "", "Split table file (CSV). Optional.")
	f.StringVar(&c.outDir, "o", ".", "Output directory for the CSV sheets.")
	f.BoolVar(&c.forexAsExchange, "forex-as-exchange", false, "Classify outgoing wires as currency conversions instead of money transfers.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.exportFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <export.json> is required")
		return subcommands.ExitUsageError
	}

	report, err := loadReport(c.exportFile, c.splitsFile, c.forexAsExchange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := renderer.WriteCSV(c.outDir, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully wrote report sheets to %s\n", c.outDir)
	return subcommands.ExitSuccess
}
