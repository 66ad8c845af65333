package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveOrderFromLoadCommandIsNotConstructed = errors.New(
	"RemoveOrderFromLoadCommand must be created via NewRemoveOrderFromLoadCommand constructor",
)

// RemoveOrderFromLoadCommand represents taking an order off a delivery run.
type RemoveOrderFromLoadCommand struct { //nolint:recvcheck //using for validation
	loadID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderFromLoadCommand creates a command to take an order off a
// run.
func NewRemoveOrderFromLoadCommand(loadID, orderID kernel.UUID) (RemoveOrderFromLoadCommand, error) {
	cmd := RemoveOrderFromLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setOrderID(orderID),
	); err != nil {
		return RemoveOrderFromLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderFromLoadCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderFromLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the run.
func (c RemoveOrderFromLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// OrderID returns the identifier of the order being removed.
func (c RemoveOrderFromLoadCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RemoveOrderFromLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *RemoveOrderFromLoadCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
