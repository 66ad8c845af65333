package load

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLoadItemIsNotConstructed is returned when a LoadItem was not created
// through the NewLoadItem constructor.
var ErrLoadItemIsNotConstructed = errs.NewValueIsRequiredError(
	"LoadItem must be created via NewLoadItem constructor")

// LoadItem is an immutable value object representing a single order placed
// on a delivery run: which order, its position in the unloading sequence,
// and how many trolleys it occupies.
type LoadItem struct {
	orderID  kernel.UUID
	sequence int
	trolleys int

	guard guard.ConstructorGuard
}

// NewLoadItem creates a LoadItem.
//
// Parameters:
//   - orderID: the order carried by this slot. Must be a constructed UUID.
//   - sequence: 1-based position in the run. Must be positive.
//   - trolleys: trolley count occupied by the order. Must be positive.
func NewLoadItem(orderID kernel.UUID, sequence int, trolleys int) (LoadItem, error) {
	if err := orderID.Validate(); err != nil {
		return LoadItem{}, errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	if sequence <= 0 {
		return LoadItem{}, errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	if trolleys <= 0 {
		return LoadItem{}, errs.NewValueIsInvalidErrorWithCause("trolleys",
			fmt.Errorf("%d is not greater than 0", trolleys))
	}

	return LoadItem{
		orderID:  orderID,
		sequence: sequence,
		trolleys: trolleys,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the order occupying this slot.
func (i LoadItem) OrderID() kernel.UUID {
	return i.orderID
}

// Sequence returns the 1-based position of the order in the run.
func (i LoadItem) Sequence() int {
	return i.sequence
}

// Trolleys returns the trolley count occupied by the order.
func (i LoadItem) Trolleys() int {
	return i.trolleys
}

// Validate checks that the LoadItem was created through NewLoadItem.
func (i LoadItem) Validate() error {
	return i.guard.Validate(ErrLoadItemIsNotConstructed)
}

func (i LoadItem) withSequence(sequence int) LoadItem {
	i.sequence = sequence
	return i
}
