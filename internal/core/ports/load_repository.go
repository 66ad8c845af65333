package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for delivery run
// aggregates and their load items.
type LoadRepository interface {
	// Add persists a new delivery run.
	Add(ctx context.Context, aggregate *load.DeliveryRun) error

	// Update persists changes to an existing delivery run, replacing its
	// load items.
	Update(ctx context.Context, aggregate *load.DeliveryRun) error

	// Delete removes a delivery run. Callers must verify the run is empty
	// and not active before deleting.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a delivery run by its unique identifier, fully loaded
	// with its items.
	Get(ctx context.Context, id kernel.UUID) (*load.DeliveryRun, error)

	// FindRunWithOrder retrieves the non-completed run carrying the given
	// order, or nil when the order is not loaded anywhere. Enforces the
	// one-active-run-per-order rule at planning time.
	FindRunWithOrder(ctx context.Context, orderID kernel.UUID) (*load.DeliveryRun, error)

	// GetAllInTransitBefore retrieves the dispatched runs whose scheduled
	// date is before the given cutoff. Used by the run completion job.
	GetAllInTransitBefore(ctx context.Context, cutoff time.Time) ([]*load.DeliveryRun, error)
}
