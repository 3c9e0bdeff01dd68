// Package operations holds the single steps that move an order, a payment or a
// shipment from one state to the next.
//
// Every operation is a Transform over a sealed state interface. It handles the
// states it knows about and hands every other state back unchanged, so a fixed
// list of operations can be applied in sequence and an early Invalid result
// flows through to the end untouched. A nil state is a programming error and
// panics.
//
// Collaborators are the interfaces of package ports. Their errors never
// escape a Transform: they become reasons of the Invalid state.
package operations
