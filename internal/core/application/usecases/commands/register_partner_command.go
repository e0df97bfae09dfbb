package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrRegisterPartnerCommandIsNotConstructed = errors.New(
	"RegisterPartnerCommand must be created via NewRegisterPartnerCommand constructor",
)

// RegisterPartnerCommand enrolls a new delivery partner. The user link is
// optional; a partner may be registered before any account exists.
type RegisterPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	userID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterPartnerCommand creates a command to register a delivery partner.
func NewRegisterPartnerCommand(partnerID kernel.UUID, userID *kernel.UUID) (RegisterPartnerCommand, error) {
	cmd := RegisterPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setUserID(userID),
	); err != nil {
		return RegisterPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier for the new partner.
func (c RegisterPartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// UserID returns the linked user account, nil when none.
func (c RegisterPartnerCommand) UserID() *kernel.UUID {
	return c.userID
}

func (c *RegisterPartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	c.partnerID = partnerID
	return nil
}

func (c *RegisterPartnerCommand) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}
	id := *userID
	c.userID = &id
	return nil
}
