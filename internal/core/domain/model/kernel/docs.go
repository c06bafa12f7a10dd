// Package kernel provides value objects shared across the restaurant domain model.
//
// The package includes:
//   - Money: a non-negative decimal amount with two fraction digits
//
// Value objects are immutable and can only be created through their constructors.
// Zero values fail validation so that uninitialized amounts never reach persistence.
package kernel
