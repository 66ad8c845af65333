package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCheckInBatchesCommandIsNotConstructed = errors.New(
		"CheckInBatchesCommand must be created via NewCheckInBatchesCommand constructor",
	)
	ErrReceiptsAreRequired = errors.New("at least one receipt is required")
)

// BatchReceipt is one incoming batch in a stock receipt: which article
// arrived, where it was placed and how many units.
type BatchReceipt struct {
	VarietyID  kernel.UUID
	Size       kernel.SizeCode
	Location   kernel.LocationCode
	Qty        int
	ReceivedAt time.Time
}

func (r BatchReceipt) validate() error {
	if err := r.VarietyID.Validate(); err != nil {
		return err
	}
	if err := r.Size.Validate(); err != nil {
		return err
	}
	if err := r.Location.Validate(); err != nil {
		return err
	}
	if r.Qty <= 0 {
		return fmt.Errorf("quantity %d must be greater than 0", r.Qty)
	}
	if r.ReceivedAt.IsZero() {
		return errors.New("received date is required")
	}
	return nil
}

// CheckInBatchesCommand represents a stock receipt: a set of incoming
// batches checked in together. Receipts are independent; one bad receipt
// does not block the others.
type CheckInBatchesCommand struct { //nolint:recvcheck //using for validation
	receipts []BatchReceipt

	guard guard.ConstructorGuard
}

// NewCheckInBatchesCommand creates a command to check in incoming batches.
// Only the presence of receipts is validated here; per-receipt validation
// happens during handling so a single malformed receipt surfaces in the
// per-receipt error list instead of rejecting the whole delivery.
func NewCheckInBatchesCommand(receipts []BatchReceipt) (CheckInBatchesCommand, error) {
	cmd := CheckInBatchesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setReceipts(receipts); err != nil {
		return CheckInBatchesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckInBatchesCommand) Validate() error {
	return c.guard.Validate(ErrCheckInBatchesCommandIsNotConstructed)
}

// Receipts returns the incoming batches.
func (c CheckInBatchesCommand) Receipts() []BatchReceipt {
	receipts := make([]BatchReceipt, len(c.receipts))
	copy(receipts, c.receipts)
	return receipts
}

func (c *CheckInBatchesCommand) setReceipts(receipts []BatchReceipt) error {
	if len(receipts) == 0 {
		return ErrReceiptsAreRequired
	}

	c.receipts = make([]BatchReceipt, len(receipts))
	copy(c.receipts, receipts)
	return nil
}
