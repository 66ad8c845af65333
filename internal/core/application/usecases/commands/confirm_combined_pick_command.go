package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmCombinedPickCommandIsNotConstructed = errors.New(
	"ConfirmCombinedPickCommand must be created via NewConfirmCombinedPickCommand constructor",
)

// ConfirmCombinedPickCommand represents a worker confirming a combined pick:
// qty units of one article were physically gathered at one location to serve
// several orders at once.
type ConfirmCombinedPickCommand struct { //nolint:recvcheck //using for validation
	location    kernel.LocationCode
	varietyID   kernel.UUID
	size        kernel.SizeCode
	qty         int
	pickListIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmCombinedPickCommand creates a command to confirm a combined
// pick for the article group identified by location, variety and size.
// An empty pickListIDs distributes across every open pick list; a non-empty
// set confines the distribution to just those lists, matching the scope the
// combined view was requested with.
func NewConfirmCombinedPickCommand(
	location kernel.LocationCode,
	varietyID kernel.UUID,
	size kernel.SizeCode,
	qty int,
	pickListIDs []kernel.UUID,
) (ConfirmCombinedPickCommand, error) {
	cmd := ConfirmCombinedPickCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLocation(location),
		cmd.setVarietyID(varietyID),
		cmd.setSize(size),
		cmd.setQty(qty),
		cmd.setPickListIDs(pickListIDs),
	); err != nil {
		return ConfirmCombinedPickCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCombinedPickCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCombinedPickCommandIsNotConstructed)
}

// Location returns the stock location the quantity was gathered at.
func (c ConfirmCombinedPickCommand) Location() kernel.LocationCode {
	return c.location
}

// VarietyID returns the variety of the gathered article.
func (c ConfirmCombinedPickCommand) VarietyID() kernel.UUID {
	return c.varietyID
}

// Size returns the size of the gathered article.
func (c ConfirmCombinedPickCommand) Size() kernel.SizeCode {
	return c.size
}

// Qty returns the confirmed gathered quantity.
func (c ConfirmCombinedPickCommand) Qty() int {
	return c.qty
}

// PickListIDs returns the pick lists the distribution is confined to, or an
// empty slice for the all-open default.
func (c ConfirmCombinedPickCommand) PickListIDs() []kernel.UUID {
	return c.pickListIDs
}

func (c *ConfirmCombinedPickCommand) setLocation(location kernel.LocationCode) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *ConfirmCombinedPickCommand) setVarietyID(varietyID kernel.UUID) error {
	if err := varietyID.Validate(); err != nil {
		return err
	}

	c.varietyID = varietyID
	return nil
}

func (c *ConfirmCombinedPickCommand) setSize(size kernel.SizeCode) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *ConfirmCombinedPickCommand) setQty(qty int) error {
	if qty <= 0 {
		return fmt.Errorf("quantity %d must be greater than 0", qty)
	}

	c.qty = qty
	return nil
}

func (c *ConfirmCombinedPickCommand) setPickListIDs(pickListIDs []kernel.UUID) error {
	for _, id := range pickListIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.pickListIDs = pickListIDs
	return nil
}
