package picklist

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrBatchPickIsNotConstructed is returned when a BatchPick was not created
// through the NewBatchPick constructor.
var ErrBatchPickIsNotConstructed = errs.NewValueIsRequiredError(
	"BatchPick must be created via NewBatchPick constructor")

// BatchPick is a single allocation of quantity from one inventory batch to
// one pick item. It is an immutable value object: corrections never mutate a
// BatchPick, they release it back to the ledger and create new ones.
//
// The quantity recorded here was already subtracted from the batch's
// available quantity when the allocation was made; releasing the pick
// restores it.
type BatchPick struct {
	batchID kernel.UUID
	qty     int

	guard guard.ConstructorGuard
}

// NewBatchPick creates a BatchPick for qty units drawn from batchID.
// The quantity must be positive.
func NewBatchPick(batchID kernel.UUID, qty int) (BatchPick, error) {
	if err := batchID.Validate(); err != nil {
		return BatchPick{}, err
	}
	if qty <= 0 {
		return BatchPick{}, errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	return BatchPick{
		batchID: batchID,
		qty:     qty,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// BatchID returns the identifier of the batch the quantity was drawn from.
func (p BatchPick) BatchID() kernel.UUID {
	return p.batchID
}

// Qty returns the allocated quantity.
func (p BatchPick) Qty() int {
	return p.qty
}

// Validate checks that the BatchPick was created through NewBatchPick.
func (p BatchPick) Validate() error {
	return p.guard.Validate(ErrBatchPickIsNotConstructed)
}
