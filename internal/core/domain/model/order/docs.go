// Package order contains the order aggregate of the laundry production
// pipeline: the order entity itself, its item list, the append-only event
// ledger, and the per-sector completion payloads.
//
// The aggregate enforces two invariants:
//   - the status column is a projection of the event ledger: every status
//     change appends one exit event for the sector being left and one entry
//     event for the sector being entered, and the status always equals the
//     sector of the most recent entry event;
//   - status only advances along the fixed sector pipeline (received →
//     sorting → washing → drying → ironing → ready → shipped → delivered),
//     with cancelled reachable from any non-terminal sector.
//
// Concurrency control lives outside the aggregate: CompleteSector and Cancel
// return the previous status so the repository can perform a conditional
// update keyed on it.
package order
