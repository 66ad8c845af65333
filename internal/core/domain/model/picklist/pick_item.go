package picklist

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrPickItemIsNotConstructed is returned when a PickItem instance was not created
	// through the NewPickItem or RestorePickItem factory methods.
	ErrPickItemIsNotConstructed = errors.New(
		"PickItem must be created via NewPickItem or RestorePickItem constructor")

	// ErrPickItemAlreadySettled indicates an allocation or short-mark was
	// attempted on an item that is already picked or short.
	ErrPickItemAlreadySettled = errors.New("pick item is already picked or short")
)

// PickItem is one line of a pick list: a target quantity of one variety and
// size to be gathered from one stock location. It exclusively owns its
// BatchPick allocations.
//
// PickItem maintains the conservation invariant at every observable state:
//
//	PickedQty() == sum of its BatchPick quantities
//
// and the status rules:
//   - ItemPicked iff PickedQty() == TargetQty()
//   - ItemShort only via explicit MarkShort while PickedQty() < TargetQty()
//   - ItemPending otherwise
type PickItem struct {
	// id is the unique identifier for the pick item
	id kernel.UUID

	// varietyID references the plant variety to pick
	varietyID kernel.UUID

	// size is the pot/tray size to pick
	size kernel.SizeCode

	// location is the stock location the quantity should be drawn from
	location kernel.LocationCode

	// targetQty is the quantity requested by the order line
	targetQty int

	// status is the current fulfillment state of the item
	status ItemStatus

	// picks is the ordered collection of allocations backing PickedQty
	picks []BatchPick

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewPickItem creates a new PickItem in ItemPending status with no
// allocations.
//
// Parameters:
//   - id: Unique identifier for the item (must be valid UUID)
//   - varietyID: Identifier of the plant variety (must be valid UUID)
//   - size: Pot/tray size to pick
//   - location: Stock location to draw from
//   - targetQty: Requested quantity (must be positive)
//
// Returns:
//   - *PickItem: The created item if all validations pass
//   - error: Validation error if any parameter is invalid
func NewPickItem(
	id kernel.UUID,
	varietyID kernel.UUID,
	size kernel.SizeCode,
	location kernel.LocationCode,
	targetQty int,
) (*PickItem, error) {
	item := &PickItem{
		status:        ItemPending,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setVarietyID(varietyID),
		item.setSize(size),
		item.setLocation(location),
		item.setTargetQty(targetQty),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestorePickItem reconstructs a PickItem from persistent storage, verifying
// the conservation invariant and the status rules against the restored
// allocations.
func RestorePickItem(
	id kernel.UUID,
	varietyID kernel.UUID,
	size kernel.SizeCode,
	location kernel.LocationCode,
	targetQty int,
	status ItemStatus,
	picks []BatchPick,
) (*PickItem, error) {
	item, err := NewPickItem(id, varietyID, size, location, targetQty)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	total := 0
	for _, pick := range picks {
		if err = pick.Validate(); err != nil {
			return nil, err
		}
		total += pick.Qty()
	}

	if total > targetQty {
		return nil, errs.NewValueIsInvalidErrorWithCause("picks",
			fmt.Errorf("allocated %d exceeds target %d", total, targetQty))
	}
	if status == ItemPicked && total != targetQty {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("Picked item has %d of %d allocated", total, targetQty))
	}
	if status == ItemShort && total >= targetQty {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("Short item has %d of %d allocated", total, targetQty))
	}

	item.status = status
	item.picks = append(item.picks, picks...)
	return item, nil
}

// Validate ensures the PickItem instance was properly constructed.
func (i *PickItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrPickItemIsNotConstructed
	}

	return nil
}

// ID returns the item's unique identifier.
func (i *PickItem) ID() kernel.UUID {
	return i.id
}

// VarietyID returns the identifier of the plant variety to pick.
func (i *PickItem) VarietyID() kernel.UUID {
	return i.varietyID
}

// Size returns the pot/tray size to pick.
func (i *PickItem) Size() kernel.SizeCode {
	return i.size
}

// Location returns the stock location the quantity should be drawn from.
func (i *PickItem) Location() kernel.LocationCode {
	return i.location
}

// TargetQty returns the quantity requested by the order line.
func (i *PickItem) TargetQty() int {
	return i.targetQty
}

// PickedQty returns the sum of the item's allocation quantities.
func (i *PickItem) PickedQty() int {
	total := 0
	for _, pick := range i.picks {
		total += pick.Qty()
	}
	return total
}

// RemainingQty returns the quantity still needed to reach the target.
// Returns zero for a short item: no further stock is expected.
func (i *PickItem) RemainingQty() int {
	if i.status == ItemShort {
		return 0
	}
	return i.targetQty - i.PickedQty()
}

// Status returns the current fulfillment state of the item.
func (i *PickItem) Status() ItemStatus {
	return i.status
}

// Picks returns a copy of the item's allocations in creation order.
func (i *PickItem) Picks() []BatchPick {
	picks := make([]BatchPick, len(i.picks))
	copy(picks, i.picks)
	return picks
}

// ApplyPicks appends allocations to the item and re-derives its status.
//
// Business rules:
//   - The item must not be picked or short already
//   - The combined allocation must not exceed the target quantity; the check
//     happens before any state change
//   - When the combined allocation reaches the target the item becomes
//     ItemPicked
//
// The quantities were already reserved against the ledger by the caller;
// this method only records them on the item.
func (i *PickItem) ApplyPicks(picks ...BatchPick) error {
	if i.status.IsSettled() {
		return ErrPickItemAlreadySettled
	}

	added := 0
	for _, pick := range picks {
		if err := pick.Validate(); err != nil {
			return err
		}
		added += pick.Qty()
	}

	if added == 0 {
		return errs.NewValueIsRequiredError("picks")
	}

	remaining := i.targetQty - i.PickedQty()
	if added > remaining {
		return errs.NewOverAllocationError(added, remaining)
	}

	i.picks = append(i.picks, picks...)
	if i.PickedQty() == i.targetQty {
		i.status = ItemPicked
	}

	return nil
}

// MarkShort records a worker's confirmation that the remaining quantity
// cannot be fulfilled. Allowed only while the item is pending, which implies
// PickedQty() < TargetQty(). Existing allocations are kept.
func (i *PickItem) MarkShort() error {
	if i.status.IsSettled() {
		return ErrPickItemAlreadySettled
	}

	i.status = ItemShort
	return nil
}

// Reopen clears the item's allocations and returns it to ItemPending so it
// can be re-picked. The released picks are returned to the caller, which must
// release each quantity back to the ledger before making new allocations —
// a partial correction must never leave stale BatchPicks behind.
func (i *PickItem) Reopen() []BatchPick {
	released := i.picks
	i.picks = nil
	i.status = ItemPending
	return released
}

func (i *PickItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *PickItem) setVarietyID(varietyID kernel.UUID) error {
	if err := varietyID.Validate(); err != nil {
		return err
	}
	i.varietyID = varietyID
	return nil
}

func (i *PickItem) setSize(size kernel.SizeCode) error {
	if err := size.Validate(); err != nil {
		return err
	}
	i.size = size
	return nil
}

func (i *PickItem) setLocation(location kernel.LocationCode) error {
	if err := location.Validate(); err != nil {
		return err
	}
	i.location = location
	return nil
}

func (i *PickItem) setTargetQty(targetQty int) error {
	if targetQty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("targetQty",
			fmt.Errorf("%d is not greater than 0", targetQty))
	}
	i.targetQty = targetQty
	return nil
}
