package queries

import (
	"context"
	"database/sql"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPartnerByUserQueryHandler resolves a partner record by user account.
type GetPartnerByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerByUserQueryHandler creates a handler for partner resolution.
// Requires a GORM database connection for query execution.
func NewGetPartnerByUserQueryHandler(db *gorm.DB) GetPartnerByUserQueryHandler {
	return GetPartnerByUserQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ErrObjectNotFound when no partner is linked to the account.
func (h GetPartnerByUserQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerByUserQuery,
) (GetPartnerByUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPartnerByUserQueryResponse{}, err
	}

	var response GetPartnerByUserQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			available,
			latitude,
			longitude
		FROM delivery_partners
		WHERE user_id = ?
	`, query.UserID().Bytes()).Row()

	err := row.Scan(&id, &response.Available, &response.Latitude, &response.Longitude)
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return GetPartnerByUserQueryResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
	}
	if err != nil {
		return GetPartnerByUserQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetPartnerByUserQueryResponse{}, err
	}

	return response, nil
}
