// Package pocketfolio provides the types and logic behind a local-first
// personal-finance tracker. It is designed to keep every byte of the user's
// data in plain JSON files on their own machine.
//
// The core functionalities include:
//   - Expense Tracking: categorized spending records with optional
//     recurrence, filtered and aggregated over arbitrary date ranges.
//   - Budgets: per-category monthly spending limits whose consumed amount is
//     always recomputed from the expenses, never stored.
//   - Portfolio: investment holdings with derived valuation metrics
//     (market value, gain, allocation, risk score) and a simulated
//     random-walk price feed in place of real market data.
//   - News Feed: a locally regenerated headline feed with bookmarking and
//     trending-topic extraction over titles.
//   - Preferences: flat user settings with defensive normalization.
//   - Persistence: whole-document JSON stores with sample-data fallback and
//     temp-file-then-rename writes.
//
// This package serves as the foundational logic for the `pfo` command-line
// tool, ensuring that all operations work from the same source of truth.
package pocketfolio
