// Package assignment implements the driver-assignment history ledger.
//
// Each Assignment row records one driver attached to one contract over the
// contract's date range. Rows are append-oriented: a row is created Assigned
// and makes at most one transition to Unassigned or Cancelled, and nothing
// ever deletes a row. Conflict detection reads this ledger; two active rows
// for the same driver must never have overlapping periods, where ranges that
// merely touch on a boundary day already count as overlapping.
package assignment
