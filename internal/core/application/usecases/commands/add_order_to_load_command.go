package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAddOrderToLoadCommandIsNotConstructed = errors.New(
	"AddOrderToLoadCommand must be created via NewAddOrderToLoadCommand constructor",
)

// AddOrderToLoadCommand represents placing an order on a delivery run.
type AddOrderToLoadCommand struct { //nolint:recvcheck //using for validation
	loadID  kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddOrderToLoadCommand creates a command to place an order on a run.
func NewAddOrderToLoadCommand(loadID, orderID kernel.UUID) (AddOrderToLoadCommand, error) {
	cmd := AddOrderToLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setOrderID(orderID),
	); err != nil {
		return AddOrderToLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderToLoadCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderToLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the receiving run.
func (c AddOrderToLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// OrderID returns the identifier of the order being loaded.
func (c AddOrderToLoadCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AddOrderToLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *AddOrderToLoadCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
