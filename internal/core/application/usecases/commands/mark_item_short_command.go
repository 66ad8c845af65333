package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkItemShortCommandIsNotConstructed = errors.New(
	"MarkItemShortCommand must be created via NewMarkItemShortCommand constructor",
)

// MarkItemShortCommand represents a worker confirming that the remaining
// quantity of a pick item cannot be gathered. The quantity picked so far
// stays allocated.
type MarkItemShortCommand struct { //nolint:recvcheck //using for validation
	pickItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkItemShortCommand creates a command to settle a pick item as short.
func NewMarkItemShortCommand(pickItemID kernel.UUID) (MarkItemShortCommand, error) {
	cmd := MarkItemShortCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPickItemID(pickItemID); err != nil {
		return MarkItemShortCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkItemShortCommand) Validate() error {
	return c.guard.Validate(ErrMarkItemShortCommandIsNotConstructed)
}

// PickItemID returns the identifier of the item being settled as short.
func (c MarkItemShortCommand) PickItemID() kernel.UUID {
	return c.pickItemID
}

func (c *MarkItemShortCommand) setPickItemID(pickItemID kernel.UUID) error {
	if err := pickItemID.Validate(); err != nil {
		return err
	}

	c.pickItemID = pickItemID
	return nil
}
