// Package partnerrepo provides data transfer objects and mapping functions
// for delivery partner persistence.
package partnerrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting partner
// aggregates. The availability flag is indexed because dispatch scans it on
// every tick.
type PartnerDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Latitude  float64
	Longitude float64
	Available bool `gorm:"index"`
	Version   int64
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

// fromDomain converts a partner aggregate to its database representation.
func fromDomain(aggregate *partner.Partner) PartnerDTO {
	var userID *uuid.UUID
	if id := aggregate.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return PartnerDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    userID,
		Latitude:  aggregate.Location().Latitude(),
		Longitude: aggregate.Location().Longitude(),
		Available: aggregate.IsAvailable(),
		Version:   aggregate.Version(),
	}
}

// toDomain converts a database DTO to a partner aggregate.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}

		userID = &uID
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(id, userID, location, dto.Available, dto.Version)
}
