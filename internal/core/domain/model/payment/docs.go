// Package payment models a card payment for a placed order.
//
// State flow:
//
//	Unvalidated ──> Validated ──> Processed
//	     │              │
//	     └──────────────┴──> Invalid
//
// The raw card number and CVV never leave the Unvalidated state; later states
// only carry the masked number.
package payment
