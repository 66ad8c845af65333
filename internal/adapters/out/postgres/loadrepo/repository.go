package loadrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/load"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLoadRepository implements LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoadRepository creates a new GORM delivery run repository.
func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery run to the database.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.DeliveryRun) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	header, items := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Create(&header).Error; err != nil {
		return err
	}
	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery run to the database. The item set is
// replaced wholesale because adds, removals and resequencing all reshape it.
// The header UPDATE is conditioned on the version the aggregate was loaded
// with, so a writer working from a stale snapshot gets ErrVersionIsInvalid
// instead of silently clobbering a concurrent change.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.DeliveryRun) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	header, items := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&LoadDTO{}).
		Where("id = ? AND version = ?", header.ID, header.Version).
		Updates(map[string]any{
			"scheduled_date":  header.ScheduledDate,
			"carrier":         header.Carrier,
			"status":          header.Status,
			"override_reason": header.OverrideReason,
			"version":         header.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&LoadDTO{}).Where("id = ?", header.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("load", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("load",
			fmt.Errorf("run %s was modified concurrently", aggregate.ID().String()))
	}

	if err := db.Delete(&LoadItemDTO{}, "load_id = ?", header.ID).Error; err != nil {
		return err
	}
	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a delivery run. The domain guards deletability; the
// repository removes whatever item rows remain.
func (r *GormLoadRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Delete(&LoadItemDTO{}, "load_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := db.Delete(&LoadDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("load", id.String())
	}

	return nil
}

// Get retrieves a delivery run by ID with its items in unloading sequence.
func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.DeliveryRun, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var header LoadDTO
	if err := r.db.WithContext(ctx).First(&header, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return r.load(ctx, header)
}

// FindRunWithOrder retrieves the non-completed run carrying the given order.
// Returns nil without error when no active run holds it.
func (r *GormLoadRepository) FindRunWithOrder(ctx context.Context, orderID kernel.UUID) (*load.DeliveryRun, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var header LoadDTO
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.*
		FROM loads l
		JOIN load_items li ON li.load_id = l.id
		WHERE li.order_id = ? AND l.status != ?
		LIMIT 1
	`, orderID.Bytes(), int(load.Completed)).Scan(&header).Error
	if err != nil {
		return nil, err
	}
	if header.ID == (LoadDTO{}).ID {
		return nil, nil
	}

	return r.load(ctx, header)
}

// GetAllInTransitBefore retrieves the in-transit runs scheduled before the
// cutoff, for the completion sweep.
func (r *GormLoadRepository) GetAllInTransitBefore(ctx context.Context, cutoff time.Time) ([]*load.DeliveryRun, error) {
	var headers []LoadDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_date < ?", int(load.InTransit), cutoff).
		Find(&headers).Error
	if err != nil {
		return nil, err
	}

	runs := make([]*load.DeliveryRun, 0, len(headers))
	for _, header := range headers {
		run, loadErr := r.load(ctx, header)
		if loadErr != nil {
			return nil, loadErr
		}
		runs = append(runs, run)
	}

	return runs, nil
}

func (r *GormLoadRepository) load(ctx context.Context, header LoadDTO) (*load.DeliveryRun, error) {
	var items []LoadItemDTO
	err := r.db.WithContext(ctx).
		Where("load_id = ?", header.ID).
		Order("sequence ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return toDomain(header, items)
}
