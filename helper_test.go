package vestfolio

import (
	"time"

	"github.com/vestfolio/vestfolio/date"
)

// USD is a helper for test to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// on is a helper for test to create a date from const
func on(year int, month time.Month, day int) date.Date { return date.New(year, month, day) }

// lapseTx builds a raw RSU lapse record.
func lapseTx(on date.Date, award string, gross float64) RawTransaction {
	return RawTransaction{
		Action:      actionLapse,
		Description: descLapse,
		Symbol:      "ACME",
		Date:        on,
		Quantity:    Q(gross),
		Award:       award,
	}
}

// rsuTx builds a raw RSU deposit record.
func rsuTx(on date.Date, award string, net, fmv float64) RawTransaction {
	return RawTransaction{
		Action:          actionDeposit,
		Description:     descRS,
		Symbol:          "ACME",
		Date:            on,
		Quantity:        Q(net),
		Award:           award,
		FairMarketValue: USD(fmv),
	}
}

// esppTx builds a raw ESPP deposit record.
func esppTx(purchased date.Date, qty, buy, fmv float64) RawTransaction {
	return RawTransaction{
		Action:          actionDeposit,
		Description:     descESPP,
		Symbol:          "ACME",
		Date:            purchased.Add(3),
		Quantity:        Q(qty),
		PurchaseDate:    purchased,
		PurchasePrice:   USD(buy),
		FairMarketValue: USD(fmv),
	}
}

// saleTx builds a raw sale record consuming the given lots.
func saleTx(on date.Date, qty float64, lots ...SaleLot) RawTransaction {
	return RawTransaction{
		Action:      actionSale,
		Description: descShareSale,
		Symbol:      "ACME",
		Date:        on,
		Quantity:    Q(qty),
		Amount:      USD(qty * 100),
		Lots:        lots,
	}
}

// classify routes all records through a fresh store, failing the test on error.
func classify(t testingT, forexAsExchange bool, txs ...RawTransaction) *Events {
	t.Helper()
	e := NewEvents(forexAsExchange)
	for _, tx := range txs {
		if err := e.Classify(tx); err != nil {
			t.Fatalf("Classify(%s/%s) failed: %v", tx.Action, tx.Description, err)
		}
	}
	return e
}

// testingT is the subset of *testing.T the helpers need.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}
