// Package services provides domain services that orchestrate business
// operations across multiple aggregates of the marketplace. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PartnerDispatcher: a domain service for claiming a delivery partner and
//     assigning it to an order
//   - TrackingProjector: a pure projection of order, partner, and restaurant
//     state into the customer-facing tracking view
package services
