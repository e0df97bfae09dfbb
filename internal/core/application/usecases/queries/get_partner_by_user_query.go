package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetPartnerByUserQueryIsNotConstructed = errors.New(
	"GetPartnerByUserQuery must be created via NewGetPartnerByUserQuery constructor",
)

// GetPartnerByUserQuery resolves the delivery partner record behind a signed
// in user account. Partner clients call this after login to find their own
// partner identifier.
type GetPartnerByUserQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerByUserQuery creates a query to resolve a partner by user account.
func NewGetPartnerByUserQuery(userID kernel.UUID) (GetPartnerByUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetPartnerByUserQuery{}, err
	}

	return GetPartnerByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerByUserQueryIsNotConstructed)
}

// UserID returns the account being resolved.
func (q GetPartnerByUserQuery) UserID() kernel.UUID {
	return q.userID
}

// GetPartnerByUserQueryResponse represents the resolved partner.
type GetPartnerByUserQueryResponse struct {
	ID        kernel.UUID
	Available bool
	Latitude  float64
	Longitude float64
}
