// Package ports defines repository interfaces for the marketplace domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their line items.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The stored version must match the aggregate's version; a mismatch
	// means a concurrent writer won and the update is rejected.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items, status, and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstUnassignedInStatus retrieves the oldest order in the given
	// status that has no delivery partner yet. Used by the dispatch
	// workflow to find work.
	GetFirstUnassignedInStatus(ctx context.Context, status order.Status) (*order.Order, error)

	// Delete removes an order and its items from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
