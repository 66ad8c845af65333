package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetLoadQueryIsNotConstructed = errors.New(
	"GetLoadQuery must be created via NewGetLoadQuery constructor",
)

// GetLoadQuery retrieves one delivery run with its loaded orders for the
// dispatch board.
type GetLoadQuery struct {
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadQuery creates a query for one delivery run.
func NewGetLoadQuery(loadID kernel.UUID) (GetLoadQuery, error) {
	if err := loadID.Validate(); err != nil {
		return GetLoadQuery{}, err
	}

	return GetLoadQuery{
		loadID: loadID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadQueryIsNotConstructed)
}

// LoadID returns the identifier of the requested delivery run.
func (q GetLoadQuery) LoadID() kernel.UUID {
	return q.loadID
}

// GetLoadQueryResponse is the read model of one delivery run.
type GetLoadQueryResponse struct {
	ID              kernel.UUID
	ScheduledDate   time.Time
	Carrier         string
	VehicleCapacity int
	Status          string
	OverrideReason  string
	TotalTrolleys   int
	FillPercentage  int
	Items           []LoadItemResponse
}

// LoadItemResponse is one loaded order on a delivery run, with the order's
// current readiness so the dispatch board can flag what blocks departure.
type LoadItemResponse struct {
	OrderID     kernel.UUID
	Sequence    int
	Trolleys    int
	OrderStatus string
}
