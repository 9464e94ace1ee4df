package vestfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/vestfolio/vestfolio/date"
)

// DecodeSplits reads the externally maintained split table, a CSV with a
// "date,shares_after_split" header. The scan in splitFactor is only correct
// on a table ordered by date descending, so the table is sorted here rather
// than trusted from the caller: a wrong order would not fail, it would
// silently produce wrong factors.
func DecodeSplits(r io.Reader) ([]StockSplit, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse split table: %w", err)
	}
	if len(records) == 0 || len(records[0]) < 2 || records[0][0] != "date" || records[0][1] != "shares_after_split" {
		return nil, fmt.Errorf("split table must start with a %q header", "date,shares_after_split")
	}

	splits := make([]StockSplit, 0, len(records)-1)
	for i, rec := range records[1:] {
		var s StockSplit
		if s.Date, err = date.Parse(rec[0]); err != nil {
			return nil, fmt.Errorf("split table line %d: %w", i+2, err)
		}
		if s.Ratio, err = ParseQuantity(rec[1]); err != nil {
			return nil, fmt.Errorf("split table line %d: %w", i+2, err)
		}
		if !s.Ratio.IsPositive() {
			return nil, fmt.Errorf("split table line %d: ratio %s is not positive", i+2, s.Ratio)
		}
		splits = append(splits, s)
	}

	slices.SortStableFunc(splits, func(a, b StockSplit) int { return b.Date.Compare(a.Date) })
	return splits, nil
}

// splitFactor returns the cumulative effect of every split that occurred
// strictly after the lot date. Splits on or before the lot date are already
// reflected consistently in the broker data and do not contribute.
//
// splits must be ordered by date descending: the scan stops at the first
// split the lot date is on or after.
func splitFactor(on date.Date, splits []StockSplit) Quantity {
	factor := Q(1)
	for _, s := range splits {
		if !on.Before(s.Date) {
			break
		}
		factor = factor.Mul(s.Ratio)
	}
	return factor
}

// Reconcile produces the final, split-consistent RSU and ESPP rows.
//
// The broker retroactively rescales historical lapse quantities for splits
// that happen after vesting, but leaves net-deposit quantities and prices of
// partially held lots inconsistent. For each lot that was not fully sold, the
// pre-applied adjustment is reversed: quantity divided by the lot's split
// factor, prices multiplied by it. Fully sold lots keep their as-adjusted
// values since no later lot-level accounting depends on them. The RSU gross
// quantity always comes from the lapse side divided by the factor, because
// the broker always applies splits to lapse data.
//
// Reconcile mutates the stored events in place and is therefore a one-shot
// transform: a second call is an error.
func (e *Events) Reconcile(splits []StockSplit) (rsus []RSUDeposit, espps []ESPPDeposit, err error) {
	if e.reconciled {
		return nil, nil, fmt.Errorf("events were already reconciled")
	}
	e.reconciled = true

	if len(e.rsuLapses) != len(e.rsuDeposits) {
		return nil, nil, fmt.Errorf("number of RSU lapses %d does not match number of RSU deposits %d",
			len(e.rsuLapses), len(e.rsuDeposits))
	}

	for _, key := range sortedKeys(e.rsuDeposits) {
		rsu := e.rsuDeposits[key]
		lapse, ok := e.rsuLapses[key]
		if !ok {
			return nil, nil, fmt.Errorf("RSU deposit %v does not have a matching lapse event", key)
		}

		factor := splitFactor(rsu.Date, splits)
		if rsu.Sold.LessThan(rsu.NetQuantity) {
			log.Printf("not all shares were sold for %v, undoing adjustments (split factor %s)", key, factor)
			rsu.FairMarketValue = rsu.FairMarketValue.Mul(factor)
			rsu.NetQuantity = rsu.NetQuantity.Div(factor)
		}
		rsu.GrossQuantity = lapse.GrossQuantity.Div(factor)
		rsus = append(rsus, *rsu)
	}

	for _, on := range sortedESPPDates(e.esppDeposits) {
		espp := e.esppDeposits[on]
		factor := splitFactor(espp.Date, splits)
		if espp.Sold.LessThan(espp.Quantity) {
			log.Printf("not all shares were sold for %v, undoing adjustments (split factor %s)", on, factor)
			espp.FairMarketValue = espp.FairMarketValue.Mul(factor)
			espp.BuyPrice = espp.BuyPrice.Mul(factor)
			espp.Quantity = espp.Quantity.Div(factor)
		}
		espps = append(espps, *espp)
	}
	return rsus, espps, nil
}

// sortedKeys returns the RSU keys in a stable chronological order, so that
// advisories and emitted rows do not depend on map iteration order.
func sortedKeys(m map[GrantKey]*RSUDeposit) []GrantKey {
	keys := make([]GrantKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b GrantKey) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		if a.Month != b.Month {
			return int(a.Month) - int(b.Month)
		}
		if a.Award < b.Award {
			return -1
		} else if a.Award > b.Award {
			return 1
		}
		return 0
	})
	return keys
}

func sortedESPPDates(m map[date.Date]*ESPPDeposit) []date.Date {
	dates := make([]date.Date, 0, len(m))
	for on := range m {
		dates = append(dates, on)
	}
	slices.SortFunc(dates, date.Date.Compare)
	return dates
}
