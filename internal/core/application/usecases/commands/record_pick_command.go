package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrRecordPickCommandIsNotConstructed = errors.New(
		"RecordPickCommand must be created via NewRecordPickCommand constructor",
	)
	ErrBatchIDIsRequired = errors.New("batch id is required when picked quantity is positive")
)

// RecordPickCommand represents the single-batch picking path used by
// handheld scanners: it replaces whatever was picked on an item so far with
// one quantity drawn from one batch. A zero quantity clears the item back to
// pending.
type RecordPickCommand struct { //nolint:recvcheck //using for validation
	pickItemID kernel.UUID
	pickedQty  int
	batchID    kernel.UUID
	markShort  bool

	guard guard.ConstructorGuard
}

// NewRecordPickCommand creates a command to record a single-batch pick.
//
// Parameters:
//   - pickItemID: The item being picked (must be valid UUID)
//   - pickedQty: New picked quantity (non-negative; replaces prior picks)
//   - batchID: Batch the quantity is drawn from (required when pickedQty > 0)
//   - markShort: Settle the item as short after recording the quantity
func NewRecordPickCommand(
	pickItemID kernel.UUID,
	pickedQty int,
	batchID kernel.UUID,
	markShort bool,
) (RecordPickCommand, error) {
	cmd := RecordPickCommand{
		markShort: markShort,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickItemID(pickItemID),
		cmd.setPickedQty(pickedQty),
		cmd.setBatchID(batchID, pickedQty),
	); err != nil {
		return RecordPickCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPickCommand) Validate() error {
	return c.guard.Validate(ErrRecordPickCommandIsNotConstructed)
}

// PickItemID returns the identifier of the item being picked.
func (c RecordPickCommand) PickItemID() kernel.UUID {
	return c.pickItemID
}

// PickedQty returns the quantity that replaces the item's prior picks.
func (c RecordPickCommand) PickedQty() int {
	return c.pickedQty
}

// BatchID returns the batch the quantity is drawn from. Only meaningful when
// PickedQty is positive.
func (c RecordPickCommand) BatchID() kernel.UUID {
	return c.batchID
}

// MarkShort reports whether the item should be settled as short after the
// quantity is recorded.
func (c RecordPickCommand) MarkShort() bool {
	return c.markShort
}

func (c *RecordPickCommand) setPickItemID(pickItemID kernel.UUID) error {
	if err := pickItemID.Validate(); err != nil {
		return err
	}

	c.pickItemID = pickItemID
	return nil
}

func (c *RecordPickCommand) setPickedQty(pickedQty int) error {
	if pickedQty < 0 {
		return fmt.Errorf("picked quantity %d must not be negative", pickedQty)
	}

	c.pickedQty = pickedQty
	return nil
}

func (c *RecordPickCommand) setBatchID(batchID kernel.UUID, pickedQty int) error {
	if pickedQty == 0 {
		c.batchID = batchID
		return nil
	}
	if err := batchID.Validate(); err != nil {
		return ErrBatchIDIsRequired
	}

	c.batchID = batchID
	return nil
}
