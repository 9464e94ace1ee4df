package renderer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vestfolio/vestfolio"
)

// WriteCSV writes one CSV file per report category into dir, creating it if
// needed. File names are the category names ("rsu.csv", ...). Monetary cells
// are bare decimals; the downstream tax-lot engine does its own formatting.
func WriteCSV(dir string, r *vestfolio.Report) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create output directory %q: %w", dir, err)
	}
	for _, name := range categories {
		header, cells := table(name, r, vestfolio.Money.Number)
		if err := writeSheet(filepath.Join(dir, name+".csv"), header, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeSheet(path string, header []string, cells [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	if err := w.WriteAll(cells); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return f.Close()
}
