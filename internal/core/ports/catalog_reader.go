package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CatalogReader resolves the read-only collaborator records the dispatch core
// references by ID. Implementations never mutate these tables.
type CatalogReader interface {
	// GetUser retrieves a user account by its unique identifier.
	GetUser(ctx context.Context, id kernel.UUID) (*catalog.User, error)

	// GetRestaurant retrieves a restaurant by its unique identifier.
	GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)

	// GetMenuItem retrieves a menu item with its current price.
	// Orders capture this price at placement time.
	GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)
}
