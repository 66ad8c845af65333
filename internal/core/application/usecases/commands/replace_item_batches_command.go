package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrReplaceItemBatchesCommandIsNotConstructed = errors.New(
		"ReplaceItemBatchesCommand must be created via NewReplaceItemBatchesCommand constructor",
	)
	ErrBatchEntriesAreRequired = errors.New("at least one batch entry is required")
	ErrDuplicateBatchEntry     = errors.New("each batch may appear only once")
)

// BatchEntry is one (batch, quantity) pair in a batch replacement request.
type BatchEntry struct {
	BatchID kernel.UUID
	Qty     int
}

// ReplaceItemBatchesCommand represents an atomic replacement of a pick
// item's batch allocations: the item's current picks are released and the
// given set takes their place, validated as a whole before any ledger
// mutation.
type ReplaceItemBatchesCommand struct { //nolint:recvcheck //using for validation
	pickItemID kernel.UUID
	entries    []BatchEntry

	guard guard.ConstructorGuard
}

// NewReplaceItemBatchesCommand creates a command to replace an item's batch
// allocations. Validates that every entry has a valid batch and positive
// quantity and that no batch appears twice.
func NewReplaceItemBatchesCommand(pickItemID kernel.UUID, entries []BatchEntry) (ReplaceItemBatchesCommand, error) {
	cmd := ReplaceItemBatchesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickItemID(pickItemID),
		cmd.setEntries(entries),
	); err != nil {
		return ReplaceItemBatchesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceItemBatchesCommand) Validate() error {
	return c.guard.Validate(ErrReplaceItemBatchesCommandIsNotConstructed)
}

// PickItemID returns the identifier of the item whose allocations change.
func (c ReplaceItemBatchesCommand) PickItemID() kernel.UUID {
	return c.pickItemID
}

// Entries returns the replacement allocation set.
func (c ReplaceItemBatchesCommand) Entries() []BatchEntry {
	entries := make([]BatchEntry, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// TotalQty returns the summed quantity of all entries.
func (c ReplaceItemBatchesCommand) TotalQty() int {
	total := 0
	for _, entry := range c.entries {
		total += entry.Qty
	}
	return total
}

func (c *ReplaceItemBatchesCommand) setPickItemID(pickItemID kernel.UUID) error {
	if err := pickItemID.Validate(); err != nil {
		return err
	}

	c.pickItemID = pickItemID
	return nil
}

func (c *ReplaceItemBatchesCommand) setEntries(entries []BatchEntry) error {
	if len(entries) == 0 {
		return ErrBatchEntriesAreRequired
	}

	seen := make(map[kernel.UUID]bool, len(entries))
	for _, entry := range entries {
		if err := entry.BatchID.Validate(); err != nil {
			return err
		}
		if entry.Qty <= 0 {
			return fmt.Errorf("quantity %d must be greater than 0", entry.Qty)
		}
		if seen[entry.BatchID] {
			return ErrDuplicateBatchEntry
		}
		seen[entry.BatchID] = true
	}

	c.entries = make([]BatchEntry, len(entries))
	copy(c.entries, entries)
	return nil
}
