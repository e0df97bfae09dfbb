package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrReportLocationCommandIsNotConstructed = errors.New(
	"ReportLocationCommand must be created via NewReportLocationCommand constructor",
)

// ReportLocationCommand carries a position heartbeat from a partner's client.
type ReportLocationCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	location  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewReportLocationCommand creates a command to record a partner's position.
// Coordinates are validated against geographic bounds here, at the edge.
func NewReportLocationCommand(partnerID kernel.UUID, latitude, longitude float64) (ReportLocationCommand, error) {
	cmd := ReportLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return ReportLocationCommand{}, err
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return ReportLocationCommand{}, err
	}
	cmd.location = location

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportLocationCommandIsNotConstructed)
}

// PartnerID returns the reporting partner.
func (c ReportLocationCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Location returns the reported position.
func (c ReportLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *ReportLocationCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}
