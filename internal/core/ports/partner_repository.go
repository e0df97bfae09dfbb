package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates.
type PartnerRepository interface {
	// Add persists a new partner aggregate to storage.
	// The partner must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes to an existing partner aggregate.
	// The stored version must match the aggregate's version; a mismatch
	// means a concurrent writer won and the update is rejected.
	Update(ctx context.Context, aggregate *partner.Partner) error

	// Get retrieves a partner aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetByUserID retrieves the partner linked to the given user account.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*partner.Partner, error)

	// GetAllAvailable retrieves every partner currently free to take an
	// assignment.
	GetAllAvailable(ctx context.Context) ([]*partner.Partner, error)
}
