// Package order models the order lifecycle as a closed set of states and the
// persisted order aggregate that payment and shipping later update.
//
// The package includes:
//   - State and its variants: Unvalidated, Validated, StockChecked, Pending, Placed, Invalid
//   - UnvalidatedLine, ValidatedLine, PricedLine: an order line at each stage
//   - Event and its variants: OrderPlaced, OrderPendingPayment, OrderPlacementFailed
//   - ToEvent: the projection of a terminal state into an outward event
//   - Order and Status: the stored order and its Placed -> Paid -> Shipped lifecycle
//
// State flow:
//
//	Unvalidated ──> Validated ──> StockChecked ──> Pending ──> Placed
//	     │              │              │
//	     └──────────────┴──────────────┴──> Invalid
//
// States are immutable values. Only the application operations move an order
// from one state to the next; a value of a later state can only be built from
// a value of its precursor, so skipping a stage does not type check.
package order
