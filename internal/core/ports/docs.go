// Package ports declares the collaborators the order, payment and shipping
// operations depend on. Adapters under internal/adapters implement them.
//
// Every method takes a context so adapters can honor cancellation. A returned
// error means the collaborator itself failed; business outcomes such as
// "not enough stock" are reported through the boolean results.
package ports
