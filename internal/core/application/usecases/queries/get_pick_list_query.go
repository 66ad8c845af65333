package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetPickListQueryIsNotConstructed = errors.New(
	"GetPickListQuery must be created via NewGetPickListQuery constructor",
)

// GetPickListQuery retrieves one pick list with its items and batch
// allocations for display on the picking terminal.
type GetPickListQuery struct {
	pickListID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickListQuery creates a query for one pick list.
func NewGetPickListQuery(pickListID kernel.UUID) (GetPickListQuery, error) {
	if err := pickListID.Validate(); err != nil {
		return GetPickListQuery{}, err
	}

	return GetPickListQuery{
		pickListID: pickListID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickListQuery) Validate() error {
	return q.guard.Validate(ErrGetPickListQueryIsNotConstructed)
}

// PickListID returns the identifier of the requested pick list.
func (q GetPickListQuery) PickListID() kernel.UUID {
	return q.pickListID
}

// GetPickListQueryResponse is the read model of one pick list.
type GetPickListQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Sequence   int
	Status     string
	AssignedTo string
	Trolleys   int
	Note       string
	Items      []PickItemResponse
}

// PickItemResponse is the read model of one line on a pick list.
type PickItemResponse struct {
	ID        kernel.UUID
	VarietyID kernel.UUID
	Size      string
	Location  string
	TargetQty int
	PickedQty int
	Status    string
	Picks     []BatchPickResponse
}

// BatchPickResponse is one batch allocation on a pick item.
type BatchPickResponse struct {
	BatchID     kernel.UUID
	BatchNumber int
	Qty         int
}
