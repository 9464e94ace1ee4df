package vestfolio

import (
	"fmt"
	"time"

	"github.com/vestfolio/vestfolio/date"
)

// This file defines the typed rows the converter produces, one value type per
// event kind. Each report category has a fixed column schema; when a category
// ends up empty the report still carries one zero-valued placeholder row so
// downstream sheet consumers always observe the same columns.

// GrantKey identifies one RSU vesting lot. The broker assigns an award id per
// grant, and each grant vests at most once per month, so (year, month, award)
// is unique across deposit and lapse events even when the two record slightly
// different days.
type GrantKey struct {
	Year  int
	Month time.Month
	Award string
}

func grantKey(on date.Date, award string) GrantKey {
	return GrantKey{Year: on.Year(), Month: on.Month(), Award: award}
}

func (k GrantKey) String() string {
	return fmt.Sprintf("%04d-%02d/%s", k.Year, int(k.Month), k.Award)
}

// RSUDeposit is one RSU vesting lot: the shares actually delivered to the
// account, net of tax withholding. GrossQuantity is filled in during split
// reconciliation from the matching lapse event.
type RSUDeposit struct {
	Date            date.Date
	Symbol          string
	Award           string
	GrossQuantity   Quantity
	NetQuantity     Quantity
	FairMarketValue Money
	Sold            Quantity // running count of shares consumed by later sales
}

func (r RSUDeposit) Key() GrantKey { return grantKey(r.Date, r.Award) }

// EmptyRSUDeposit returns the schema-preserving placeholder row.
func EmptyRSUDeposit() RSUDeposit { return RSUDeposit{} }

// RSULapse is the tax-event side of an RSU vesting: the gross share count the
// award vested with, before withholding. Read-only once constructed; it only
// supplies the gross quantity for its matching deposit.
type RSULapse struct {
	Date          date.Date
	Symbol        string
	Award         string
	GrossQuantity Quantity
}

func (l RSULapse) Key() GrantKey { return grantKey(l.Date, l.Award) }

// ESPPDeposit is one ESPP purchase lot.
type ESPPDeposit struct {
	Date            date.Date // purchase date, the key sale details reference
	Symbol          string
	Quantity        Quantity
	BuyPrice        Money
	FairMarketValue Money
	Sold            Quantity
}

func EmptyESPPDeposit() ESPPDeposit { return ESPPDeposit{} }

// Dividend is a cash dividend credit. Tax withholdings and reversals are
// normalized into this shape too: a withholding is a negative amount, a
// reversal a positive one.
type Dividend struct {
	Date   date.Date
	Symbol string
	Amount Money
}

func EmptyDividend() Dividend { return Dividend{} }

// BuyOrder exists only to preserve the buy_orders sheet schema: this
// converter never produces a real buy row.
type BuyOrder struct {
	Date     date.Date
	Symbol   string
	Quantity Quantity
	Price    Money
	Fees     Money
}

func EmptyBuyOrder() BuyOrder { return BuyOrder{} }

// SellOrder is one sale transaction. Price is the gross per-share price
// reconstructed from the net proceeds and the fees.
type SellOrder struct {
	Date     date.Date
	Symbol   string
	Quantity Quantity
	Price    Money
	Fees     Money
}

func EmptySellOrder() SellOrder { return SellOrder{} }

// CurrencyConversion is an outgoing wire treated as a currency exchange.
type CurrencyConversion struct {
	Date   date.Date
	Amount Money
	Fees   Money
}

func EmptyCurrencyConversion() CurrencyConversion { return CurrencyConversion{} }

// MoneyTransfer is an outgoing wire treated as a plain transfer.
type MoneyTransfer struct {
	Date   date.Date
	Amount Money
	Fees   Money
}

func EmptyMoneyTransfer() MoneyTransfer { return MoneyTransfer{} }

// StockSplit is one record of the externally supplied split table: all
// positions multiply by Ratio at the effective date.
type StockSplit struct {
	Date  date.Date
	Ratio Quantity // shares-after-split multiplier
}
