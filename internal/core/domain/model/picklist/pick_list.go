package picklist

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrPickListIsNotConstructed is returned when a PickList instance was not created
	// through the NewPickList or RestorePickList factory methods.
	ErrPickListIsNotConstructed = errors.New(
		"PickList must be created via NewPickList or RestorePickList constructor")

	// ErrPickListCompleted indicates a mutation was attempted on a completed
	// pick list. A completed list is immutable except through Reopen.
	ErrPickListCompleted = errors.New("pick list is completed")

	// ErrPickListHasPendingItems indicates a finish action was attempted
	// while at least one item is still pending.
	ErrPickListHasPendingItems = errors.New("pick list has pending items")
)

// PickList is the set of line items from one order that must be physically
// gathered. It is the aggregate root owning its PickItems and their
// allocations, and it owns the Pending -> InProgress -> Completed lifecycle.
//
// The sequence number orders pick lists for combined picking distribution and
// load planning: lower sequence means older order, and older orders are
// served first when a combined pick falls short.
type PickList struct {
	// id is the unique identifier for the pick list
	id kernel.UUID

	// orderID references the sales order this pick list fulfills
	orderID kernel.UUID

	// sequence is the monotonically increasing pick list sequence number
	sequence int

	// status is the current lifecycle state
	status Status

	// assignedTo names the worker or team that claimed the list (may be empty)
	assignedTo string

	// trolleys is the trolley count recorded at completion (0 until then)
	trolleys int

	// note is free-form loading metadata recorded at completion
	note string

	// items is the ordered collection of pick items (one per order line)
	items []*PickItem

	// isConstructed ensures the list was created via a constructor
	isConstructed bool
}

// NewPickList creates a new PickList in Pending status.
//
// Parameters:
//   - id: Unique identifier for the pick list (must be valid UUID)
//   - orderID: Identifier of the order being fulfilled (must be valid UUID)
//   - sequence: Pick list sequence number (must be positive)
//   - items: One pick item per order line (at least one, all unique)
//
// Returns:
//   - *PickList: The created pick list if all validations pass
//   - error: Validation error if any parameter is invalid
func NewPickList(id kernel.UUID, orderID kernel.UUID, sequence int, items []*PickItem) (*PickList, error) {
	list := &PickList{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		list.setID(id),
		list.setOrderID(orderID),
		list.setSequence(sequence),
		list.setItems(items),
	); err != nil {
		return nil, err
	}

	return list, nil
}

// RestorePickList reconstructs a PickList from persistent storage with its
// persisted status and completion metadata.
func RestorePickList(
	id kernel.UUID,
	orderID kernel.UUID,
	sequence int,
	status Status,
	assignedTo string,
	trolleys int,
	note string,
	items []*PickItem,
) (*PickList, error) {
	list, err := NewPickList(id, orderID, sequence, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if trolleys < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("trolleys",
			fmt.Errorf("%d is negative", trolleys))
	}

	list.status = status
	list.assignedTo = assignedTo
	list.trolleys = trolleys
	list.note = note
	return list, nil
}

// Validate ensures the PickList instance was properly constructed.
func (l *PickList) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrPickListIsNotConstructed
	}

	return nil
}

// IsEqual compares two pick lists by their unique identifiers.
func (l *PickList) IsEqual(other *PickList) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the pick list's unique identifier.
func (l *PickList) ID() kernel.UUID {
	return l.id
}

// OrderID returns the identifier of the order being fulfilled.
func (l *PickList) OrderID() kernel.UUID {
	return l.orderID
}

// Sequence returns the pick list sequence number.
func (l *PickList) Sequence() int {
	return l.sequence
}

// Status returns the current lifecycle state.
func (l *PickList) Status() Status {
	return l.status
}

// AssignedTo returns the worker or team that claimed the list, or an empty
// string when unclaimed.
func (l *PickList) AssignedTo() string {
	return l.assignedTo
}

// Trolleys returns the trolley count recorded at completion.
func (l *PickList) Trolleys() int {
	return l.trolleys
}

// Note returns the loading metadata recorded at completion.
func (l *PickList) Note() string {
	return l.note
}

// Items returns the pick items in order-line order.
func (l *PickList) Items() []*PickItem {
	items := make([]*PickItem, len(l.items))
	copy(items, l.items)
	return items
}

// Item returns the pick item with the given identifier.
// Returns an ObjectNotFoundError when the item does not belong to this list.
func (l *PickList) Item(itemID kernel.UUID) (*PickItem, error) {
	for _, item := range l.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("pickItem", itemID.String())
}

// PendingItems returns the items that still block completion.
func (l *PickList) PendingItems() []*PickItem {
	var pending []*PickItem
	for _, item := range l.items {
		if !item.Status().IsSettled() {
			pending = append(pending, item)
		}
	}
	return pending
}

// IsCompleted reports whether the pick list is in Completed status.
func (l *PickList) IsCompleted() bool {
	return l.status == Completed
}

// Start claims the pick list for a worker or team and moves it to
// InProgress. Repeated claims are a no-op success; the first claimer is
// recorded. A completed list cannot be started again.
func (l *PickList) Start(assignee string) error {
	if l.status == Completed {
		return ErrPickListCompleted
	}

	newStatus, err := l.status.Start()
	if err != nil {
		return err
	}

	l.status = newStatus
	if l.assignedTo == "" {
		l.assignedTo = assignee
	}
	return nil
}

// ApplyItemPicks records allocations on one of the list's items.
// The first allocation starts the list if no worker has claimed it yet.
// A completed list rejects further allocations.
func (l *PickList) ApplyItemPicks(itemID kernel.UUID, picks ...BatchPick) error {
	if l.status == Completed {
		return ErrPickListCompleted
	}

	item, err := l.Item(itemID)
	if err != nil {
		return err
	}

	if err = item.ApplyPicks(picks...); err != nil {
		return err
	}

	newStatus, err := l.status.Start()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// MarkItemShort records a worker's short confirmation on one of the list's
// items.
func (l *PickList) MarkItemShort(itemID kernel.UUID) error {
	if l.status == Completed {
		return ErrPickListCompleted
	}

	item, err := l.Item(itemID)
	if err != nil {
		return err
	}

	if err = item.MarkShort(); err != nil {
		return err
	}

	newStatus, err := l.status.Start()
	if err != nil {
		return err
	}
	l.status = newStatus
	return nil
}

// ReopenItem clears one item's allocations so it can be re-picked, returning
// the released picks. The caller must release each returned quantity back to
// the ledger before allocating again.
func (l *PickList) ReopenItem(itemID kernel.UUID) ([]BatchPick, error) {
	if l.status == Completed {
		return nil, ErrPickListCompleted
	}

	item, err := l.Item(itemID)
	if err != nil {
		return nil, err
	}

	return item.Reopen(), nil
}

// Complete performs the finish action: it verifies that no item remains
// pending, records the trolley metadata and moves the list to Completed.
//
// Completion is idempotent: finishing an already-completed list returns
// (false, nil) without touching the recorded metadata, so client retries are
// safe. The returned bool is true only when this call performed the
// transition; callers use it to decide whether to update the order and emit
// the completion event.
func (l *PickList) Complete(trolleys int, note string) (bool, error) {
	if l.status == Completed {
		return false, nil
	}

	if trolleys < 0 {
		return false, errs.NewValueIsInvalidErrorWithCause("trolleys",
			fmt.Errorf("%d is negative", trolleys))
	}

	if pending := l.PendingItems(); len(pending) > 0 {
		ids := make([]string, len(pending))
		for i, item := range pending {
			ids[i] = item.ID().String()
		}
		return false, fmt.Errorf("%w: %v", ErrPickListHasPendingItems, ids)
	}

	newStatus, err := l.status.Complete()
	if err != nil {
		return false, err
	}

	l.status = newStatus
	l.trolleys = trolleys
	l.note = note
	return true, nil
}

// Reopen returns a completed pick list to InProgress so it can be corrected.
// The completion metadata is cleared.
func (l *PickList) Reopen() error {
	newStatus, err := l.status.Reopen()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.trolleys = 0
	l.note = ""
	return nil
}

func (l *PickList) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *PickList) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	l.orderID = orderID
	return nil
}

func (l *PickList) setSequence(sequence int) error {
	if sequence <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	l.sequence = sequence
	return nil
}

func (l *PickList) setItems(items []*PickItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("duplicate pick item %s", item.ID()))
		}
		seen[item.ID()] = struct{}{}
	}

	l.items = make([]*PickItem, len(items))
	copy(l.items, items)
	return nil
}
