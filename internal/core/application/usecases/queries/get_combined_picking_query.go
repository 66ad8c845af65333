package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCombinedPickingQueryIsNotConstructed = errors.New(
	"GetCombinedPickingQuery must be created via NewGetCombinedPickingQuery constructor",
)

// GetCombinedPickingQuery retrieves the combined picking view: the open pick
// lists folded into one walk through the nursery, grouped by article and
// location with the remaining quantity per group.
type GetCombinedPickingQuery struct {
	pickListIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCombinedPickingQuery creates a query for the combined picking view.
// An empty pickListIDs covers every open pick list; a non-empty set narrows
// the walk to just those lists.
func NewGetCombinedPickingQuery(pickListIDs []kernel.UUID) (GetCombinedPickingQuery, error) {
	for _, id := range pickListIDs {
		if err := id.Validate(); err != nil {
			return GetCombinedPickingQuery{}, err
		}
	}

	return GetCombinedPickingQuery{
		pickListIDs: pickListIDs,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// PickListIDs returns the pick lists the view is narrowed to, or an empty
// slice for the all-open default.
func (q GetCombinedPickingQuery) PickListIDs() []kernel.UUID {
	return q.pickListIDs
}

// Validate ensures the query was created through the constructor.
func (q GetCombinedPickingQuery) Validate() error {
	return q.guard.Validate(ErrGetCombinedPickingQueryIsNotConstructed)
}

// GetCombinedPickingQueryResponse is one article group on the combined walk.
type GetCombinedPickingQueryResponse struct {
	Location     string
	VarietyID    kernel.UUID
	Size         string
	RemainingQty int
	Targets      []CombinedTargetResponse
}

// CombinedTargetResponse is one constituent order line of an article group,
// ordered by pick list sequence so workers see who gets served first.
type CombinedTargetResponse struct {
	PickListID   kernel.UUID
	Sequence     int
	RemainingQty int
}
