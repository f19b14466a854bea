// Package tracking implements the Tracking aggregate and its history ledger.
//
// A Tracking is the one-to-one live-state companion of an order. Mutations go
// through the typed Patch structure and Apply, which enforces the terminal
// lock and the at-most-one-history-event-per-update rule. HistoryEvent is the
// immutable, append-only record of each status or location change.
//
// Tracking numbers (TRK + last 8 epoch-millisecond digits + 3 random digits)
// are generated by GenerateNumber; the storage layer's unique constraint
// backstops their uniqueness.
package tracking
