// Package cmd implements the CLI application converting equity award
// exports into per-category report sheets.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/vestfolio/vestfolio"
)

// Commands lists the subcommands in registration order. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&convertCmd{},
	&showCmd{},
	&splitsCmd{},
	&topicCmd{},
}

// loadEvents reads and classifies a broker export file.
func loadEvents(exportFile string, forexAsExchange bool) (*vestfolio.Events, error) {
	f, err := os.Open(exportFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open export file: %w", err)
	}
	defer f.Close()

	txs, err := vestfolio.DecodeExport(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read export file %q: %w", exportFile, err)
	}

	events := vestfolio.NewEvents(forexAsExchange)
	for _, tx := range txs {
		if err := events.Classify(tx); err != nil {
			return nil, fmt.Errorf("cannot classify export file %q: %w", exportFile, err)
		}
	}
	return events, nil
}

// loadSplits reads the split table file. An empty file name means no splits.
func loadSplits(splitsFile string) ([]vestfolio.StockSplit, error) {
	if splitsFile == "" {
		return nil, nil
	}
	f, err := os.Open(splitsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open split table: %w", err)
	}
	defer f.Close()

	splits, err := vestfolio.DecodeSplits(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read split table %q: %w", splitsFile, err)
	}
	return splits, nil
}

// loadReport runs the full pipeline from the two input files to a
// reconciled report.
func loadReport(exportFile, splitsFile string, forexAsExchange bool) (*vestfolio.Report, error) {
	events, err := loadEvents(exportFile, forexAsExchange)
	if err != nil {
		return nil, err
	}
	splits, err := loadSplits(splitsFile)
	if err != nil {
		return nil, err
	}
	return vestfolio.NewReport(events, splits)
}

// printMarkdown renders a markdown document on the terminal, falling back
// to the raw text when the renderer is not available.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Println(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
