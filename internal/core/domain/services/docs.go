// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the laundry system. It implements business
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - TrackingAllocator: A domain service that computes the next unused
//     tracking number for an order's production records
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
