// Package services provides domain services that apply rules spanning several
// value objects and do not belong to a single state.
//
// The package includes:
//   - OrderValidator: turns raw order input into a validated order or the full
//     list of problems with it
package services
