package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picklist"
)

// PickListRepository defines the persistence contract for pick list
// aggregates, including their items and batch allocations.
type PickListRepository interface {
	// Add persists a new pick list aggregate with all its items.
	Add(ctx context.Context, aggregate *picklist.PickList) error

	// Update persists changes to an existing pick list aggregate,
	// replacing its items and their allocations.
	Update(ctx context.Context, aggregate *picklist.PickList) error

	// Get retrieves a pick list by its unique identifier, fully loaded
	// with items and allocations.
	Get(ctx context.Context, id kernel.UUID) (*picklist.PickList, error)

	// GetByOrder retrieves the pick list fulfilling the given order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*picklist.PickList, error)

	// GetByItem retrieves the pick list owning the given pick item.
	GetByItem(ctx context.Context, itemID kernel.UUID) (*picklist.PickList, error)

	// GetAllOpen retrieves every pick list not yet completed, ordered by
	// sequence ascending. Used by the combined picking view and its
	// confirmation flow.
	GetAllOpen(ctx context.Context) ([]*picklist.PickList, error)
}
