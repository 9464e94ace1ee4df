// Package vestfolio reconstructs a clean, per-lot transaction history for
// equity compensation (RSUs, ESPP shares) and related cash events from a
// brokerage's raw JSON transaction export.
//
// The core functionalities include:
//   - Classification: routing each raw record into one of the typed event
//     kinds (RSU lapse/deposit, ESPP deposit, dividend, sale, wire, tax
//     withholding/reversal) by its exact (Action, Description) pair.
//   - Sale Attribution: walking the lot-level details of every sale and
//     accumulating the consumed share counts onto the matching deposit lots.
//   - Split Reconciliation: detecting and reversing the broker's uneven
//     application of historical stock splits, so quantities and prices are
//     expressed on the share-count basis that held at the original lot date.
//   - Aggregation: merging the adjusted events into seven fixed-schema
//     report categories, sorted by date, ready for a downstream
//     tax-lot/FIFO accounting engine.
//
// This package serves as the foundational logic for the `vfc` command-line
// tool. The whole reconciliation is one sequential batch pass; all failures
// are fatal for the run.
package vestfolio
