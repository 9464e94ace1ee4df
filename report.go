package vestfolio

import (
	"slices"

	"github.com/vestfolio/vestfolio/date"
)

// Report is the final output of a reconciliation run: seven categories of
// normalized rows, each sorted by date, each guaranteed non-empty so that
// downstream tabular consumers always observe the expected column schema.
type Report struct {
	RSU                 []RSUDeposit
	ESPP                []ESPPDeposit
	Dividends           []Dividend
	BuyOrders           []BuyOrder
	SellOrders          []SellOrder
	CurrencyConversions []CurrencyConversion
	MoneyTransfers      []MoneyTransfer
}

// NewReport reconciles the classified events against the split table and
// aggregates them into the final report.
func NewReport(e *Events, splits []StockSplit) (*Report, error) {
	rsus, espps, err := e.Reconcile(splits)
	if err != nil {
		return nil, err
	}

	r := &Report{
		RSU:                 rsus,
		ESPP:                espps,
		Dividends:           slices.Clone(e.dividends),
		BuyOrders:           slices.Clone(e.buyOrders),
		SellOrders:          slices.Clone(e.sellOrders),
		CurrencyConversions: slices.Clone(e.conversions),
		MoneyTransfers:      slices.Clone(e.transfers),
	}

	if len(r.RSU) == 0 {
		r.RSU = []RSUDeposit{EmptyRSUDeposit()}
	}
	if len(r.ESPP) == 0 {
		r.ESPP = []ESPPDeposit{EmptyESPPDeposit()}
	}
	if len(r.Dividends) == 0 {
		r.Dividends = []Dividend{EmptyDividend()}
	}
	if len(r.BuyOrders) == 0 {
		r.BuyOrders = []BuyOrder{EmptyBuyOrder()}
	}
	if len(r.SellOrders) == 0 {
		r.SellOrders = []SellOrder{EmptySellOrder()}
	}
	if len(r.CurrencyConversions) == 0 {
		r.CurrencyConversions = []CurrencyConversion{EmptyCurrencyConversion()}
	}
	if len(r.MoneyTransfers) == 0 {
		r.MoneyTransfers = []MoneyTransfer{EmptyMoneyTransfer()}
	}

	sortByDate(r.RSU, func(v RSUDeposit) date.Date { return v.Date })
	sortByDate(r.ESPP, func(v ESPPDeposit) date.Date { return v.Date })
	sortByDate(r.Dividends, func(v Dividend) date.Date { return v.Date })
	sortByDate(r.BuyOrders, func(v BuyOrder) date.Date { return v.Date })
	sortByDate(r.SellOrders, func(v SellOrder) date.Date { return v.Date })
	sortByDate(r.CurrencyConversions, func(v CurrencyConversion) date.Date { return v.Date })
	sortByDate(r.MoneyTransfers, func(v MoneyTransfer) date.Date { return v.Date })
	return r, nil
}

func sortByDate[T any](rows []T, on func(T) date.Date) {
	slices.SortStableFunc(rows, func(a, b T) int { return on(a).Compare(on(b)) })
}
