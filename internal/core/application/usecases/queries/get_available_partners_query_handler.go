package queries

import (
	"context"
	"database/sql"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailablePartnersQueryHandler retrieves free delivery partners.
// Joins the users table for display names; partners without a linked account
// get a generated "Partner <short id>" label.
type GetAvailablePartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailablePartnersQueryHandler creates a handler for the free-partner listing.
// Requires a GORM database connection for query execution.
func NewGetAvailablePartnersQueryHandler(db *gorm.DB) GetAvailablePartnersQueryHandler {
	return GetAvailablePartnersQueryHandler{db: db}
}

// Handle executes the query to retrieve all available partners.
func (h GetAvailablePartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePartnersQuery,
) ([]GetAvailablePartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetAvailablePartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			u.full_name,
			u.username,
			p.latitude,
			p.longitude
		FROM delivery_partners p
		LEFT JOIN users u ON u.id = p.user_id
		WHERE p.available
		ORDER BY p.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAvailablePartnersQueryResponse
		var id uuid.UUID
		var fullName, username sql.NullString

		err = rows.Scan(
			&id,
			&fullName,
			&username,
			&response.Latitude,
			&response.Longitude,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		switch {
		case fullName.Valid && fullName.String != "":
			response.Name = fullName.String
		case username.Valid && username.String != "":
			response.Name = username.String
		default:
			response.Name = fmt.Sprintf("Partner %.8s", id.String())
		}

		partners = append(partners, response)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
