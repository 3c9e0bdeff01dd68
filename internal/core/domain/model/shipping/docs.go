// Package shipping models handing a paid order over to a carrier.
//
// State flow:
//
//	Unvalidated ──> Validated ──> Shipped
//	     │              │
//	     └──────────────┴──> Invalid
//
// Carrier is the closed set of supported carriers with their tracking number
// prefixes and delivery lead times.
package shipping
