package vestfolio

import (
	"fmt"

	"github.com/vestfolio/vestfolio/date"
)

// The (Action, Description) pairs the classifier routes on. Anything else in
// the export is deliberately dropped.
const (
	actionDeposit     = "Deposit"
	actionLapse       = "Lapse"
	actionDividend    = "Dividend"
	actionSale        = "Sale"
	actionWire        = "Wire Transfer"
	actionWithholding = "Tax Withholding"
	actionReversal    = "Tax Reversal"

	descESPP         = "ESPP"
	descLapse        = "Restricted Stock Lapse"
	descRS           = "RS"
	descCredit       = "Credit"
	descShareSale    = "Share Sale"
	descDisbursement = "Cash Disbursement"
	descDebit        = "Debit"
)

// Events is the per-kind store of classified transactions. It is filled one
// record at a time by Classify, which also attributes sale details back onto
// the stored deposit lots, and is consumed exactly once by Reconcile.
//
// The whole run is a single sequential pass; nothing here is safe for
// concurrent use and nothing needs to be.
type Events struct {
	rsuDeposits  map[GrantKey]*RSUDeposit
	rsuLapses    map[GrantKey]*RSULapse
	esppDeposits map[date.Date]*ESPPDeposit

	dividends   []Dividend
	buyOrders   []BuyOrder
	sellOrders  []SellOrder
	conversions []CurrencyConversion
	transfers   []MoneyTransfer

	// forexAsExchange classifies outgoing wires as currency conversions
	// instead of plain money transfers.
	forexAsExchange bool

	reconciled bool
}

// NewEvents returns an empty store. When forexAsExchange is set, outgoing
// wire transfers are recorded as currency conversions.
func NewEvents(forexAsExchange bool) *Events {
	return &Events{
		rsuDeposits:     make(map[GrantKey]*RSUDeposit),
		rsuLapses:       make(map[GrantKey]*RSULapse),
		esppDeposits:    make(map[date.Date]*ESPPDeposit),
		forexAsExchange: forexAsExchange,
	}
}

// Classify routes one raw record into the store. Records whose
// (Action, Description) pair is not recognized are silently dropped; that is
// the contract, not an error. Key collisions and sales referencing unknown
// lots are fatal.
func (e *Events) Classify(tx RawTransaction) error {
	switch {
	case tx.Action == actionDeposit && tx.Description == descESPP:
		espp := &ESPPDeposit{
			Date:            tx.PurchaseDate,
			Symbol:          tx.Symbol,
			Quantity:        tx.Quantity,
			BuyPrice:        tx.PurchasePrice,
			FairMarketValue: tx.FairMarketValue,
		}
		if espp.Date.IsZero() {
			// some exports omit the nested purchase date; the deposit
			// date is then the best available lot key.
			espp.Date = tx.Date
		}
		if _, dup := e.esppDeposits[espp.Date]; dup {
			return fmt.Errorf("duplicated ESPP deposit event on %v", espp.Date)
		}
		e.esppDeposits[espp.Date] = espp

	case tx.Action == actionLapse && tx.Description == descLapse:
		lapse := &RSULapse{
			Date:          tx.Date,
			Symbol:        tx.Symbol,
			Award:         tx.Award,
			GrossQuantity: tx.Quantity,
		}
		if _, dup := e.rsuLapses[lapse.Key()]; dup {
			return fmt.Errorf("duplicated RSU lapse event %v", lapse.Key())
		}
		e.rsuLapses[lapse.Key()] = lapse

	case tx.Action == actionDeposit && tx.Description == descRS:
		rsu := &RSUDeposit{
			Date:            tx.Date,
			Symbol:          tx.Symbol,
			Award:           tx.Award,
			NetQuantity:     tx.Quantity,
			FairMarketValue: tx.FairMarketValue,
		}
		if _, dup := e.rsuDeposits[rsu.Key()]; dup {
			return fmt.Errorf("duplicated RSU deposit event %v", rsu.Key())
		}
		e.rsuDeposits[rsu.Key()] = rsu

	case tx.Action == actionDividend && tx.Description == descCredit:
		e.dividends = append(e.dividends, Dividend{Date: tx.Date, Symbol: tx.Symbol, Amount: tx.Amount})

	case tx.Action == actionSale && tx.Description == descShareSale:
		order := SellOrder{
			Date:     tx.Date,
			Symbol:   tx.Symbol,
			Quantity: tx.Quantity,
			Fees:     tx.Fees,
		}
		if !tx.Quantity.IsZero() {
			// proceeds are net of fees; reconstruct the gross per-share price.
			order.Price = tx.Amount.Add(tx.Fees).Div(tx.Quantity)
		}
		e.sellOrders = append(e.sellOrders, order)
		if err := e.attributeSale(tx); err != nil {
			return err
		}

	case tx.Action == actionWire && tx.Description == descDisbursement:
		if e.forexAsExchange {
			e.conversions = append(e.conversions, CurrencyConversion{Date: tx.Date, Amount: tx.Amount, Fees: tx.Fees})
		} else {
			e.transfers = append(e.transfers, MoneyTransfer{Date: tx.Date, Amount: tx.Amount, Fees: tx.Fees})
		}

	case tx.Action == actionWithholding && tx.Description == descDebit:
		// a withholding is a negative dividend adjustment.
		e.dividends = append(e.dividends, Dividend{Date: tx.Date, Symbol: tx.Symbol, Amount: tx.Amount})

	case tx.Action == actionReversal && tx.Description == descCredit:
		// a reversal gives a previously withheld amount back.
		e.dividends = append(e.dividends, Dividend{Date: tx.Date, Symbol: tx.Symbol, Amount: tx.Amount})

	default:
		// unused transaction kinds are dropped on purpose.
	}
	return nil
}

// attributeSale walks the lot-level details of a sale and adds each consumed
// share count onto the matching deposit lot's Sold counter.
func (e *Events) attributeSale(tx RawTransaction) error {
	for _, lot := range tx.Lots {
		switch lot.Type {
		case descRS:
			key := grantKey(lot.VestDate, lot.Award)
			rsu, ok := e.rsuDeposits[key]
			if !ok {
				return fmt.Errorf("sale on %v references RSU lot %v that does not exist", tx.Date, key)
			}
			rsu.Sold = rsu.Sold.Add(lot.Shares)
		case descESPP:
			espp, ok := e.esppDeposits[lot.PurchaseDate]
			if !ok {
				return fmt.Errorf("sale on %v references ESPP lot %v that does not exist", tx.Date, lot.PurchaseDate)
			}
			espp.Sold = espp.Sold.Add(lot.Shares)
		}
	}
	return nil
}
