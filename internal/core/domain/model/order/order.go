package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents the fulfillment-side view of a sales order. The commercial
// details (customer, pricing, invoicing) live elsewhere; this aggregate owns
// only what fulfillment needs: the dispatch status and the trolley estimate
// used to plan delivery runs.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Trolley estimate must be positive
//   - Status transitions follow the Picking -> Ready -> Dispatched workflow
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status represents the current state in the fulfillment lifecycle
	status Status

	// preDispatchStatus records the state the order held when it was
	// dispatched, so a recall can resume there. Unknown while not dispatched.
	preDispatchStatus Status

	// trolleys is the estimated trolley count the order occupies on a vehicle
	trolleys int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order entering the fulfillment stage.
// The order starts in Picking status.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - trolleys: Estimated trolley count for load planning (must be positive)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.UUID, trolleys int) (*Order, error) {
	o := &Order{
		status:        Picking,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTrolleys(trolleys),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage with its
// persisted status and recorded pre-dispatch state. preDispatchStatus is
// Unknown for orders that are not currently dispatched.
func RestoreOrder(id kernel.UUID, trolleys int, status, preDispatchStatus Status) (*Order, error) {
	o, err := NewOrder(id, trolleys)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if preDispatchStatus != Unknown {
		if err = preDispatchStatus.Validate(); err != nil {
			return nil, err
		}
		if preDispatchStatus == Dispatched {
			return nil, errs.NewValueIsInvalidErrorWithCause("preDispatchStatus",
				errors.New("Dispatched cannot be a pre-dispatch state"))
		}
	}

	o.status = status
	o.preDispatchStatus = preDispatchStatus
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current fulfillment status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PreDispatchStatus returns the state the order held when it was dispatched,
// or Unknown while the order is not on a run.
func (o *Order) PreDispatchStatus() Status {
	return o.preDispatchStatus
}

// Trolleys returns the estimated trolley count used for load planning.
func (o *Order) Trolleys() int {
	return o.trolleys
}

// IsReady reports whether the order can be dispatched.
func (o *Order) IsReady() bool {
	return o.status.IsReady()
}

// MarkReady records that the order's pick list has been completed.
// Repeating the call on an already Ready order is a no-op success, matching
// the idempotent completion of the pick list.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reopen returns a Ready order to Picking so its pick list can be corrected.
func (o *Order) Reopen() error {
	newStatus, err := o.status.Reopen()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch marks the order as having left on a delivery run.
// Only Ready orders can be dispatched.
func (o *Order) Dispatch() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.preDispatchStatus = o.status
	o.status = newStatus
	return nil
}

// ForceDispatch marks the order as dispatched even when it is not Ready.
// Used by dispatcher overrides; a recall of the run returns the order to the
// state it held when forced out, so an order dispatched mid-pick resumes in
// Picking.
func (o *Order) ForceDispatch() error {
	newStatus, err := o.status.ForceDispatch()
	if err != nil {
		return err
	}

	o.preDispatchStatus = o.status
	o.status = newStatus
	return nil
}

// Recall reverses a dispatch, returning the order to its pre-dispatch state.
func (o *Order) Recall() error {
	newStatus, err := o.status.Recall(o.preDispatchStatus)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.preDispatchStatus = Unknown
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrolleys(trolleys int) error {
	if trolleys <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("trolleys", fmt.Errorf("%d is not greater than 0", trolleys))
	}
	o.trolleys = trolleys
	return nil
}
