package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrDeleteLoadCommandIsNotConstructed = errors.New(
	"DeleteLoadCommand must be created via NewDeleteLoadCommand constructor",
)

// DeleteLoadCommand represents removal of a planned delivery run.
type DeleteLoadCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteLoadCommand creates a command to delete a delivery run.
func NewDeleteLoadCommand(loadID kernel.UUID) (DeleteLoadCommand, error) {
	cmd := DeleteLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLoadID(loadID); err != nil {
		return DeleteLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteLoadCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the run to delete.
func (c DeleteLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c *DeleteLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}
