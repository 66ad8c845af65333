package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrResequenceLoadCommandIsNotConstructed = errors.New(
		"ResequenceLoadCommand must be created via NewResequenceLoadCommand constructor",
	)
	ErrOrderIDsAreRequired = errors.New("at least one order id is required")
)

// ResequenceLoadCommand represents a dispatcher reordering the unloading
// sequence of a delivery run.
type ResequenceLoadCommand struct { //nolint:recvcheck //using for validation
	loadID   kernel.UUID
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewResequenceLoadCommand creates a command to reorder a run. The order IDs
// must be a permutation of the orders on the run.
func NewResequenceLoadCommand(loadID kernel.UUID, orderIDs []kernel.UUID) (ResequenceLoadCommand, error) {
	cmd := ResequenceLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return ResequenceLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResequenceLoadCommand) Validate() error {
	return c.guard.Validate(ErrResequenceLoadCommandIsNotConstructed)
}

// LoadID returns the identifier of the run being reordered.
func (c ResequenceLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// OrderIDs returns the new unloading order.
func (c ResequenceLoadCommand) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}

func (c *ResequenceLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	c.loadID = loadID
	return nil
}

func (c *ResequenceLoadCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrderIDsAreRequired
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = make([]kernel.UUID, len(orderIDs))
	copy(c.orderIDs, orderIDs)
	return nil
}
