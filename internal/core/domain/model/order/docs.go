// Package order implements the Order aggregate: one trip/delivery request
// with a lifecycle status and an independent payment status.
//
// The aggregate enforces the terminal lock (completed and cancelled orders
// are immutable), the delete-only-while-pending rule, and validation of all
// attributes at construction. Partial updates go through the typed Patch
// structure so only the mutable field set can ever change.
//
// Order numbers (RIDE<YYYYMM>-<NNNN>) are generated by GenerateNumber as a
// pure function of clock and random source; the storage layer's unique
// constraint backstops their uniqueness.
package order
