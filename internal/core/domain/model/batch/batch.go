package batch

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrInventoryBatchIsNotConstructed is returned when an InventoryBatch instance was
	// not created through the NewInventoryBatch or RestoreInventoryBatch factory methods.
	ErrInventoryBatchIsNotConstructed = errors.New(
		"InventoryBatch must be created via NewInventoryBatch or RestoreInventoryBatch constructor")
)

// InventoryBatch represents one physical batch of plants of a single variety
// and size standing at one stock location. It is the aggregate root of the
// inventory ledger: picks draw quantity from a batch and corrections return
// quantity to it.
//
// InventoryBatch follows these invariants:
//   - Must have a valid unique identifier and batch number
//   - Must reference a valid variety, size and location
//   - availableQty is never negative
//   - Can only be created through NewInventoryBatch or RestoreInventoryBatch
//
// The available quantity held here is the authoritative in-memory view; under
// concurrent picking the repository performs the equivalent conditional
// decrement atomically against the batch row. Both enforce the same rule:
// a reservation never takes availableQty below zero.
type InventoryBatch struct {
	// id is the unique identifier for the batch
	id kernel.UUID

	// batchNumber is the human-facing sequential batch number
	batchNumber int

	// varietyID references the plant variety held in the batch
	varietyID kernel.UUID

	// size is the pot/tray size of the plants in the batch
	size kernel.SizeCode

	// location is the stock location where the batch stands
	location kernel.LocationCode

	// receivedAt is when the batch was checked in; drives oldest-first rotation
	receivedAt time.Time

	// availableQty is the quantity still available for picking (never negative)
	availableQty int

	// isConstructed ensures the batch was created via a constructor
	isConstructed bool
}

// NewInventoryBatch creates a new InventoryBatch on stock receipt.
//
// Parameters:
//   - id: Unique identifier for the batch (must be valid UUID)
//   - batchNumber: Sequential batch number (must be positive)
//   - varietyID: Identifier of the plant variety (must be valid UUID)
//   - size: Pot/tray size descriptor
//   - location: Stock location where the batch stands
//   - receivedAt: Check-in timestamp (must not be zero)
//   - quantity: Initial available quantity (must be positive)
//
// Returns:
//   - *InventoryBatch: The created batch if all validations pass
//   - error: Validation error if any parameter is invalid
func NewInventoryBatch(
	id kernel.UUID,
	batchNumber int,
	varietyID kernel.UUID,
	size kernel.SizeCode,
	location kernel.LocationCode,
	receivedAt time.Time,
	quantity int,
) (*InventoryBatch, error) {
	b := &InventoryBatch{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setBatchNumber(batchNumber),
		b.setVarietyID(varietyID),
		b.setSize(size),
		b.setLocation(location),
		b.setReceivedAt(receivedAt),
		b.setInitialQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreInventoryBatch reconstructs an InventoryBatch from persistent storage.
// Unlike NewInventoryBatch, a restored batch may have a zero available
// quantity: batches stay on record after they have been picked empty.
func RestoreInventoryBatch(
	id kernel.UUID,
	batchNumber int,
	varietyID kernel.UUID,
	size kernel.SizeCode,
	location kernel.LocationCode,
	receivedAt time.Time,
	availableQty int,
) (*InventoryBatch, error) {
	b := &InventoryBatch{
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setBatchNumber(batchNumber),
		b.setVarietyID(varietyID),
		b.setSize(size),
		b.setLocation(location),
		b.setReceivedAt(receivedAt),
		b.setAvailableQty(availableQty),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the InventoryBatch instance was properly constructed.
func (b *InventoryBatch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrInventoryBatchIsNotConstructed
	}

	return nil
}

// IsEqual compares two batches by their unique identifiers.
func (b *InventoryBatch) IsEqual(other *InventoryBatch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch's unique identifier.
func (b *InventoryBatch) ID() kernel.UUID {
	return b.id
}

// BatchNumber returns the human-facing sequential batch number.
func (b *InventoryBatch) BatchNumber() int {
	return b.batchNumber
}

// VarietyID returns the identifier of the plant variety held in the batch.
func (b *InventoryBatch) VarietyID() kernel.UUID {
	return b.varietyID
}

// Size returns the pot/tray size of the plants in the batch.
func (b *InventoryBatch) Size() kernel.SizeCode {
	return b.size
}

// Location returns the stock location where the batch stands.
func (b *InventoryBatch) Location() kernel.LocationCode {
	return b.location
}

// ReceivedAt returns the check-in timestamp of the batch.
func (b *InventoryBatch) ReceivedAt() time.Time {
	return b.receivedAt
}

// AvailableQty returns the quantity still available for picking.
func (b *InventoryBatch) AvailableQty() int {
	return b.availableQty
}

// Reserve subtracts qty from the available quantity.
//
// Business rules:
//   - qty must be positive
//   - the available quantity must cover qty; otherwise InsufficientStockError
//     is returned and the batch is left unchanged
//
// Example:
//
//	if err := b.Reserve(30); err != nil {
//	    var short *errs.InsufficientStockError
//	    if errors.As(err, &short) {
//	        // pick fewer units or choose another batch
//	    }
//	}
func (b *InventoryBatch) Reserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("%d is not greater than 0", qty))
	}

	if qty > b.availableQty {
		return errs.NewInsufficientStockError(b.id.String(), qty, b.availableQty)
	}

	b.availableQty -= qty
	return nil
}

// Release returns qty to the available quantity. Used to reverse an
// allocation when a pick is corrected or a pick list is reopened.
//
// Business rules:
//   - qty must be positive
func (b *InventoryBatch) Release(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty", fmt.Errorf("%d is not greater than 0", qty))
	}

	b.availableQty += qty
	return nil
}

func (b *InventoryBatch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *InventoryBatch) setBatchNumber(batchNumber int) error {
	if batchNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("batchNumber",
			fmt.Errorf("%d is not greater than 0", batchNumber))
	}
	b.batchNumber = batchNumber
	return nil
}

func (b *InventoryBatch) setVarietyID(varietyID kernel.UUID) error {
	if err := varietyID.Validate(); err != nil {
		return err
	}
	b.varietyID = varietyID
	return nil
}

func (b *InventoryBatch) setSize(size kernel.SizeCode) error {
	if err := size.Validate(); err != nil {
		return err
	}
	b.size = size
	return nil
}

func (b *InventoryBatch) setLocation(location kernel.LocationCode) error {
	if err := location.Validate(); err != nil {
		return err
	}
	b.location = location
	return nil
}

func (b *InventoryBatch) setReceivedAt(receivedAt time.Time) error {
	if receivedAt.IsZero() {
		return errs.NewValueIsRequiredError("receivedAt")
	}
	b.receivedAt = receivedAt
	return nil
}

func (b *InventoryBatch) setInitialQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	b.availableQty = quantity
	return nil
}

// setAvailableQty restores a persisted quantity, which may have been picked
// down to zero.
func (b *InventoryBatch) setAvailableQty(availableQty int) error {
	if availableQty < 0 {
		return errs.NewValueIsInvalidErrorWithCause("availableQty",
			fmt.Errorf("%d is negative", availableQty))
	}
	b.availableQty = availableQty
	return nil
}
