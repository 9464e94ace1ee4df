package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/vestfolio/vestfolio"
)

// ReportMarkdown renders the full report as one markdown document with one
// table per category, in the fixed category order.
func ReportMarkdown(r *vestfolio.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Reconciled equity statement")

	for _, name := range categories {
		header, cells := table(name, r, vestfolio.Money.String)

		doc.H2(strings.ReplaceAll(name, "_", " "))

		alignment := make([]md.TableAlignment, len(header))
		for i := range alignment {
			// dates and identifiers left, numbers right.
			if i == 0 || header[i] == "symbol" || header[i] == "award_id" {
				alignment[i] = md.AlignLeft
			} else {
				alignment[i] = md.AlignRight
			}
		}
		doc.Table(md.TableSet{
			Alignment: alignment,
			Header:    header,
			Rows:      cells,
		})
	}

	return doc.String()
}

// SplitsMarkdown renders the split table in the order the reconciliation
// engine scans it, most recent first.
func SplitsMarkdown(splits []vestfolio.StockSplit) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Stock splits")
	if len(splits) == 0 {
		doc.PlainText("No splits on record.")
		return doc.String()
	}

	set := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"effective date", "shares after split"},
		Rows:      [][]string{},
	}
	for _, s := range splits {
		set.Rows = append(set.Rows, []string{s.Date.String(), s.Ratio.String()})
	}
	doc.Table(set)
	doc.PlainText(fmt.Sprintf("%d split(s), scanned most recent first.", len(splits)))
	return doc.String()
}
