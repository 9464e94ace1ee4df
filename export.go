package vestfolio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/vestfolio/vestfolio/date"
)

// This file decodes the brokerage JSON export. The export is one object with
// a "Transactions" array whose element shape varies by transaction kind, so
// it is parsed as dynamic JSON and the kind-specific nested fields are pulled
// out with jsonpath where they exist.

// RawTransaction is one record of the brokerage export, flattened to the
// fields the classifier reads. Immutable input.
type RawTransaction struct {
	Action      string
	Description string
	Symbol      string
	Date        date.Date
	Quantity    Quantity
	Amount      Money
	Fees        Money

	// Kind-specific nested fields, zero-valued when the record has none.
	Award           string    // broker-assigned grant id (RSU lapse/deposit)
	FairMarketValue Money     // per-share FMV at vest or purchase
	PurchasePrice   Money     // ESPP discounted purchase price
	PurchaseDate    date.Date // ESPP purchase date, the lot key

	// Lots are the lot-level details of a sale, one per consumed lot.
	Lots []SaleLot
}

// SaleLot is one lot-level detail of a sale: a share count consumed from a
// prior RSU or ESPP deposit.
type SaleLot struct {
	Type         string // "RS" or "ESPP"
	Shares       Quantity
	Award        string    // grant id, set for RSU lots
	VestDate     date.Date // set for RSU lots
	PurchaseDate date.Date // set for ESPP lots
}

// DecodeExport reads a brokerage JSON export and returns its transaction
// records in file order.
func DecodeExport(r io.Reader) ([]RawTransaction, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse export: %w", err)
	}

	jtxs, err := jsonpath.Get("$.Transactions", doc)
	if err != nil {
		return nil, fmt.Errorf("export has no Transactions array: %w", err)
	}
	list, ok := jtxs.([]any)
	if !ok {
		return nil, fmt.Errorf("export Transactions is not an array")
	}

	txs := make([]RawTransaction, 0, len(list))
	for i, jtx := range list {
		tx, err := decodeTransaction(jtx)
		if err != nil {
			return nil, fmt.Errorf("transaction #%d: %w", i+1, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func decodeTransaction(jtx any) (RawTransaction, error) {
	tx := RawTransaction{
		Action:      jstr(jtx, "Action"),
		Description: jstr(jtx, "Description"),
		Symbol:      jstr(jtx, "Symbol"),
	}

	var err error
	if tx.Date, err = optionalUSDate(jstr(jtx, "Date")); err != nil {
		return tx, err
	}
	if tx.Quantity, err = ParseQuantity(jstr(jtx, "Quantity")); err != nil {
		return tx, err
	}
	if tx.Amount, err = ParseUSD(jstr(jtx, "Amount")); err != nil {
		return tx, err
	}
	if tx.Fees, err = ParseUSD(jstr(jtx, "FeesAndCommissions")); err != nil {
		return tx, err
	}

	for _, jd := range details(jtx) {
		if t := jstr(jd, "Type"); t != "" {
			// Lot-level sale detail.
			lot := SaleLot{Type: t, Award: jstr(jd, "GrantId")}
			if lot.Shares, err = ParseQuantity(jstr(jd, "Shares")); err != nil {
				return tx, err
			}
			if lot.VestDate, err = optionalUSDate(jstr(jd, "VestDate")); err != nil {
				return tx, err
			}
			if lot.PurchaseDate, err = optionalUSDate(jstr(jd, "PurchaseDate")); err != nil {
				return tx, err
			}
			tx.Lots = append(tx.Lots, lot)
			continue
		}

		// Vesting or purchase detail, at most one per record.
		if v := jstr(jd, "AwardId"); v != "" {
			tx.Award = v
		}
		for _, key := range []string{"VestFairMarketValue", "FairMarketValuePrice", "PurchaseFairMarketValue"} {
			if v := jstr(jd, key); v != "" {
				if tx.FairMarketValue, err = ParseUSD(v); err != nil {
					return tx, err
				}
				break
			}
		}
		if v := jstr(jd, "PurchasePrice"); v != "" {
			if tx.PurchasePrice, err = ParseUSD(v); err != nil {
				return tx, err
			}
		}
		if v := jstr(jd, "PurchaseDate"); v != "" {
			if tx.PurchaseDate, err = date.ParseUS(v); err != nil {
				return tx, err
			}
		}
	}
	return tx, nil
}

// details returns the nested Details objects of a transaction record, or nil.
func details(jtx any) []any {
	jval, err := jsonpath.Get("$.TransactionDetails[*].Details", jtx)
	if err != nil {
		return nil
	}
	// because jsonpath is never clear about whether it returns a list of
	// answers or a single answer: normalize to a list here.
	if jlist, ok := jval.([]any); ok {
		return jlist
	}
	return []any{jval}
}

// jstr reads a string field from a dynamic JSON object. Numeric values are
// formatted back to strings since the broker is not consistent about quoting.
func jstr(jobj any, key string) string {
	m, ok := jobj.(map[string]any)
	if !ok {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// optionalUSDate parses a broker date, treating the empty string as the zero date.
func optionalUSDate(str string) (date.Date, error) {
	if str == "" {
		return date.Date{}, nil
	}
	return date.ParseUS(str)
}
