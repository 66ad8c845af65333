package load

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrDeliveryRunIsNotConstructed is returned when a DeliveryRun instance was
// not created through the NewDeliveryRun or RestoreDeliveryRun factory
// methods.
var ErrDeliveryRunIsNotConstructed = errors.New(
	"DeliveryRun must be created via NewDeliveryRun or RestoreDeliveryRun constructor")

// DeliveryRun is the aggregate root for a planned vehicle round: which
// orders go on the truck, in what unloading sequence, and whether the truck
// has left. It owns the Planned -> Loading -> InTransit -> Completed
// lifecycle and the structural invariants of its load items (unique orders,
// contiguous sequence starting at 1).
type DeliveryRun struct {
	// id is the unique identifier for the run
	id kernel.UUID

	// scheduledDate is the calendar date the run is planned for
	scheduledDate time.Time

	// carrier names the transport company or driver
	carrier string

	// vehicleCapacity is the trolley capacity of the vehicle
	vehicleCapacity int

	// status is the current lifecycle state
	status Status

	// overrideReason records why a shortfall dispatch was forced (audit)
	overrideReason string

	// items is the ordered collection of loaded orders
	items []LoadItem

	// version is the optimistic-concurrency token, incremented on every
	// persisted update
	version int

	// isConstructed ensures the run was created via a constructor
	isConstructed bool
}

// NewDeliveryRun creates a new DeliveryRun in Planned status with no orders.
//
// Parameters:
//   - id: Unique identifier for the run (must be valid UUID)
//   - scheduledDate: Calendar date of the round (must not be zero)
//   - carrier: Transport company or driver name (must not be blank)
//   - vehicleCapacity: Trolley capacity of the vehicle (must be positive)
//
// Returns:
//   - *DeliveryRun: The created run if all validations pass
//   - error: Validation error if any parameter is invalid
func NewDeliveryRun(
	id kernel.UUID,
	scheduledDate time.Time,
	carrier string,
	vehicleCapacity int,
) (*DeliveryRun, error) {
	run := &DeliveryRun{
		status:        Planned,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		run.setID(id),
		run.setScheduledDate(scheduledDate),
		run.setCarrier(carrier),
		run.setVehicleCapacity(vehicleCapacity),
	); err != nil {
		return nil, err
	}

	return run, nil
}

// RestoreDeliveryRun reconstructs a DeliveryRun from persistent storage with
// its persisted status, version and load items.
func RestoreDeliveryRun(
	id kernel.UUID,
	scheduledDate time.Time,
	carrier string,
	vehicleCapacity int,
	status Status,
	overrideReason string,
	version int,
	items []LoadItem,
) (*DeliveryRun, error) {
	run, err := NewDeliveryRun(id, scheduledDate, carrier, vehicleCapacity)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	if err = run.setItems(items); err != nil {
		return nil, err
	}

	run.status = status
	run.overrideReason = overrideReason
	run.version = version
	return run, nil
}

// Validate ensures the DeliveryRun instance was properly constructed.
func (r *DeliveryRun) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrDeliveryRunIsNotConstructed
	}

	return nil
}

// IsEqual compares two delivery runs by their unique identifiers.
func (r *DeliveryRun) IsEqual(other *DeliveryRun) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the run's unique identifier.
func (r *DeliveryRun) ID() kernel.UUID {
	return r.id
}

// ScheduledDate returns the calendar date the run is planned for.
func (r *DeliveryRun) ScheduledDate() time.Time {
	return r.scheduledDate
}

// Carrier returns the transport company or driver name.
func (r *DeliveryRun) Carrier() string {
	return r.carrier
}

// VehicleCapacity returns the trolley capacity of the vehicle.
func (r *DeliveryRun) VehicleCapacity() int {
	return r.vehicleCapacity
}

// Status returns the current lifecycle state.
func (r *DeliveryRun) Status() Status {
	return r.status
}

// OverrideReason returns the recorded shortfall override, or an empty string
// when the run was dispatched normally.
func (r *DeliveryRun) OverrideReason() string {
	return r.overrideReason
}

// Version returns the optimistic-concurrency token the aggregate was
// restored with. The repository conditions its UPDATE on this value, so two
// writers racing from the same snapshot cannot both win.
func (r *DeliveryRun) Version() int {
	return r.version
}

// Items returns the load items in unloading-sequence order.
func (r *DeliveryRun) Items() []LoadItem {
	items := make([]LoadItem, len(r.items))
	copy(items, r.items)
	return items
}

// OrderIDs returns the loaded order identifiers in sequence order.
func (r *DeliveryRun) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(r.items))
	for i, item := range r.items {
		ids[i] = item.OrderID()
	}
	return ids
}

// TotalTrolleys returns the trolley count occupied by all loaded orders.
func (r *DeliveryRun) TotalTrolleys() int {
	total := 0
	for _, item := range r.items {
		total += item.Trolleys()
	}
	return total
}

// FillPercentage returns the vehicle utilization as a whole percentage,
// truncated toward zero. A run carrying 15 trolleys on a 20-trolley vehicle
// is 75 percent full. The value may exceed 100 when the run is overloaded.
func (r *DeliveryRun) FillPercentage() int {
	return r.TotalTrolleys() * 100 / r.vehicleCapacity
}

// ContainsOrder reports whether the order is already loaded on this run.
func (r *DeliveryRun) ContainsOrder(orderID kernel.UUID) bool {
	for _, item := range r.items {
		if item.OrderID().IsEqual(orderID) {
			return true
		}
	}
	return false
}

// AddOrder appends the order at the end of the unloading sequence. The run
// moves from Planned to Loading on the first order. An order may appear on
// the run at most once; a dispatched or completed run cannot be
// restructured.
func (r *DeliveryRun) AddOrder(orderID kernel.UUID, trolleys int) error {
	if r.status.IsActive() {
		return errs.NewLoadActiveError(r.id.String())
	}
	if r.ContainsOrder(orderID) {
		return errs.NewOrderAlreadyLoadedError(orderID.String(), r.id.String())
	}

	item, err := NewLoadItem(orderID, len(r.items)+1, trolleys)
	if err != nil {
		return err
	}

	r.items = append(r.items, item)
	r.status = Loading
	return nil
}

// RemoveOrder takes the order off the run and closes the sequence gap.
// The run returns to Planned when the last order is removed.
func (r *DeliveryRun) RemoveOrder(orderID kernel.UUID) error {
	if r.status.IsActive() {
		return errs.NewLoadActiveError(r.id.String())
	}

	idx := -1
	for i, item := range r.items {
		if item.OrderID().IsEqual(orderID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errs.NewObjectNotFoundError("loadItem", orderID.String())
	}

	r.items = append(r.items[:idx], r.items[idx+1:]...)
	for i := range r.items {
		r.items[i] = r.items[i].withSequence(i + 1)
	}
	if len(r.items) == 0 {
		r.status = Planned
	}
	return nil
}

// Resequence reorders the run's load items to match the given order
// identifiers. The list must be a permutation of the loaded orders:
// every loaded order exactly once, nothing else.
func (r *DeliveryRun) Resequence(orderIDs []kernel.UUID) error {
	if r.status.IsActive() {
		return errs.NewLoadActiveError(r.id.String())
	}
	if len(orderIDs) != len(r.items) {
		return errs.NewValueIsInvalidErrorWithCause("orderIDs",
			fmt.Errorf("%d ids given, run carries %d orders", len(orderIDs), len(r.items)))
	}

	reordered := make([]LoadItem, 0, len(r.items))
	seen := make(map[kernel.UUID]bool, len(orderIDs))
	for i, orderID := range orderIDs {
		if seen[orderID] {
			return errs.NewValueIsInvalidErrorWithCause("orderIDs",
				fmt.Errorf("order %s appears more than once", orderID.String()))
		}
		seen[orderID] = true

		found := false
		for _, item := range r.items {
			if item.OrderID().IsEqual(orderID) {
				reordered = append(reordered, item.withSequence(i+1))
				found = true
				break
			}
		}
		if !found {
			return errs.NewObjectNotFoundError("loadItem", orderID.String())
		}
	}

	r.items = reordered
	return nil
}

// Dispatch marks the run as departed. The run must carry at least one order;
// readiness of the loaded orders is the caller's responsibility. A non-empty
// overrideReason records that the dispatch was forced past unready orders.
//
// Dispatching a run that is already in transit is a no-op: the method
// reports false and leaves the run untouched, so a re-sent dispatch request
// cannot fail or overwrite the recorded override reason.
func (r *DeliveryRun) Dispatch(overrideReason string) (bool, error) {
	if r.status == InTransit {
		return false, nil
	}
	if len(r.items) == 0 {
		return false, errs.NewValueIsInvalidErrorWithCause("items",
			errors.New("run carries no orders"))
	}

	newStatus, err := r.status.Dispatch()
	if err != nil {
		return false, err
	}

	r.status = newStatus
	r.overrideReason = strings.TrimSpace(overrideReason)
	return true, nil
}

// Recall returns a dispatched run to Planned, for example when the truck
// comes back with undelivered orders. A run that was never dispatched cannot
// be recalled.
func (r *DeliveryRun) Recall() error {
	newStatus, err := r.status.Recall()
	if err != nil {
		return errs.NewNotDispatchedError(r.id.String())
	}

	r.status = newStatus
	r.overrideReason = ""
	return nil
}

// Complete closes out a dispatched run once the round is finished.
func (r *DeliveryRun) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// EnsureDeletable verifies the run may be deleted: it must carry no orders
// and must not have been dispatched.
func (r *DeliveryRun) EnsureDeletable() error {
	if r.status.IsActive() {
		return errs.NewLoadActiveError(r.id.String())
	}
	if len(r.items) > 0 {
		return errs.NewLoadNotEmptyError(r.id.String(), len(r.items))
	}
	return nil
}

func (r *DeliveryRun) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}

	r.id = id
	return nil
}

func (r *DeliveryRun) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}

	r.scheduledDate = scheduledDate
	return nil
}

func (r *DeliveryRun) setCarrier(carrier string) error {
	carrier = strings.TrimSpace(carrier)
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}

	r.carrier = carrier
	return nil
}

func (r *DeliveryRun) setVehicleCapacity(vehicleCapacity int) error {
	if vehicleCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("vehicleCapacity",
			fmt.Errorf("%d is not greater than 0", vehicleCapacity))
	}

	r.vehicleCapacity = vehicleCapacity
	return nil
}

func (r *DeliveryRun) setItems(items []LoadItem) error {
	seen := make(map[kernel.UUID]bool, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if item.Sequence() != i+1 {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("item %d has sequence %d", i+1, item.Sequence()))
		}
		if seen[item.OrderID()] {
			return errs.NewOrderAlreadyLoadedError(item.OrderID().String(), r.id.String())
		}
		seen[item.OrderID()] = true
	}

	r.items = make([]LoadItem, len(items))
	copy(r.items, items)
	return nil
}
