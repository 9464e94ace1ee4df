// Package renderer turns a reconciled report into tabular output: one
// markdown document for human review, and one CSV file per category for the
// downstream tax-lot engine.
package renderer

import (
	"github.com/vestfolio/vestfolio"
)

// categories fixes the emission order and the per-category schema. Column
// sets must stay stable even for empty categories; the aggregator guarantees
// a placeholder row, the renderer guarantees the header.
var categories = []string{
	"rsu",
	"espp",
	"dividends",
	"buy_orders",
	"sell_orders",
	"currency_conversions",
	"money_transfers",
}

// moneyFormat selects the cell representation of monetary values: display
// formatting for markdown, bare decimals for CSV.
type moneyFormat func(vestfolio.Money) string

// table returns the header and cell rows of one category.
func table(name string, r *vestfolio.Report, money moneyFormat) (header []string, cells [][]string) {
	switch name {
	case "rsu":
		header = []string{"date", "symbol", "award_id", "gross_quantity", "net_quantity", "fair_market_value", "sold"}
		for _, v := range r.RSU {
			cells = append(cells, []string{
				v.Date.String(), v.Symbol, v.Award,
				v.GrossQuantity.String(), v.NetQuantity.String(),
				money(v.FairMarketValue), v.Sold.String(),
			})
		}
	case "espp":
		header = []string{"date", "symbol", "quantity", "buy_price", "fair_market_value", "sold"}
		for _, v := range r.ESPP {
			cells = append(cells, []string{
				v.Date.String(), v.Symbol, v.Quantity.String(),
				money(v.BuyPrice), money(v.FairMarketValue), v.Sold.String(),
			})
		}
	case "dividends":
		header = []string{"date", "symbol", "amount"}
		for _, v := range r.Dividends {
			cells = append(cells, []string{v.Date.String(), v.Symbol, money(v.Amount)})
		}
	case "buy_orders":
		header = []string{"date", "symbol", "quantity", "price", "fees"}
		for _, v := range r.BuyOrders {
			cells = append(cells, []string{v.Date.String(), v.Symbol, v.Quantity.String(), money(v.Price), money(v.Fees)})
		}
	case "sell_orders":
		header = []string{"date", "symbol", "quantity", "price", "fees"}
		for _, v := range r.SellOrders {
			cells = append(cells, []string{v.Date.String(), v.Symbol, v.Quantity.String(), money(v.Price), money(v.Fees)})
		}
	case "currency_conversions":
		header = []string{"date", "amount", "fees"}
		for _, v := range r.CurrencyConversions {
			cells = append(cells, []string{v.Date.String(), money(v.Amount), money(v.Fees)})
		}
	case "money_transfers":
		header = []string{"date", "amount", "fees"}
		for _, v := range r.MoneyTransfers {
			cells = append(cells, []string{v.Date.String(), money(v.Amount), money(v.Fees)})
		}
	}
	return header, cells
}
