package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

const testExport = `{
  "Transactions": [
    {
      "Date": "09/15/2022", "Action": "Lapse", "Symbol": "ACME",
      "Description": "Restricted Stock Lapse", "Quantity": "500",
      "TransactionDetails": [
        {"Details": {"AwardId": "C123", "VestFairMarketValue": "$12.50"}}
      ]
    },
    {
      "Date": "09/16/2022", "Action": "Deposit", "Symbol": "ACME",
      "Description": "RS", "Quantity": "400",
      "TransactionDetails": [
        {"Details": {"AwardId": "C123", "VestFairMarketValue": "$12.50"}}
      ]
    },
    {
      "Date": "12/01/2022", "Action": "Wire Transfer",
      "Description": "Cash Disbursement", "Amount": "-$2,000.00",
      "FeesAndCommissions": "$15.00"
    }
  ]
}`

const testSplits = "date,shares_after_split\n2015-7-15,4\n"

// writeFixtures writes an export and a split table into a temp dir.
func writeFixtures(t *testing.T) (exportFile, splitsFile string) {
	t.Helper()
	dir := t.TempDir()
	exportFile = filepath.Join(dir, "export.json")
	splitsFile = filepath.Join(dir, "splits.csv")
	if err := os.WriteFile(exportFile, []byte(testExport), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(splitsFile, []byte(testSplits), 0644); err != nil {
		t.Fatal(err)
	}
	return exportFile, splitsFile
}

func TestConvertCmd(t *testing.T) {
	exportFile, splitsFile := writeFixtures(t)
	outDir := filepath.Join(t.TempDir(), "out")

	c := &convertCmd{exportFile: exportFile, splitsFile: splitsFile, outDir: outDir}
	if got := c.Execute(context.Background(), flag.NewFlagSet("convert", flag.ContinueOnError)); got != subcommands.ExitSuccess {
		t.Fatalf("convert exited with %v", got)
	}

	for _, name := range []string{"rsu", "espp", "dividends", "buy_orders", "sell_orders", "currency_conversions", "money_transfers"} {
		if _, err := os.Stat(filepath.Join(outDir, name+".csv")); err != nil {
			t.Errorf("convert did not write %s.csv: %v", name, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(outDir, "rsu.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "2022-09-16,ACME,C123,500,400,12.5,0") {
		t.Errorf("rsu.csv is missing the deposit row:\n%s", raw)
	}
}

func TestConvertCmdMissingInput(t *testing.T) {
	c := &convertCmd{}
	if got := c.Execute(context.Background(), flag.NewFlagSet("convert", flag.ContinueOnError)); got != subcommands.ExitUsageError {
		t.Errorf("convert without -i exited with %v, want usage error", got)
	}
}

func TestLoadReport(t *testing.T) {
	exportFile, splitsFile := writeFixtures(t)

	report, err := loadReport(exportFile, splitsFile, false)
	if err != nil {
		t.Fatalf("loadReport() error: %v", err)
	}
	if len(report.RSU) != 1 || report.RSU[0].Award != "C123" {
		t.Errorf("unexpected RSU rows: %+v", report.RSU)
	}
	if len(report.MoneyTransfers) != 1 || report.MoneyTransfers[0].Date.IsZero() {
		t.Errorf("wire was not classified as a money transfer: %+v", report.MoneyTransfers)
	}

	// Same input with the wire classified as a conversion.
	report, err = loadReport(exportFile, splitsFile, true)
	if err != nil {
		t.Fatalf("loadReport() error: %v", err)
	}
	if len(report.CurrencyConversions) != 1 || report.CurrencyConversions[0].Date.IsZero() {
		t.Errorf("wire was not classified as a conversion: %+v", report.CurrencyConversions)
	}

	if _, err := loadReport(filepath.Join(t.TempDir(), "nope.json"), "", false); err == nil {
		t.Error("loadReport() on a missing export should fail")
	}
}
