package batchrepo

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBatchRepository implements BatchRepository using GORM.
type GormBatchRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBatchRepository creates a new GORM batch repository.
func NewGormBatchRepository(db *gorm.DB, tracker aggregateTracker) *GormBatchRepository {
	return &GormBatchRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new batch to the database.
func (r *GormBatchRepository) Add(ctx context.Context, aggregate *batch.InventoryBatch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a batch by ID.
func (r *GormBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.InventoryBatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindCandidates retrieves the non-empty batches of the given article at the
// given location, oldest received first.
func (r *GormBatchRepository) FindCandidates(
	ctx context.Context,
	varietyID kernel.UUID,
	size kernel.SizeCode,
	location kernel.LocationCode,
) ([]*batch.InventoryBatch, error) {
	var dtos []BatchDTO
	err := r.db.WithContext(ctx).
		Where("variety_id = ? AND size = ? AND location = ? AND available_qty > 0",
			varietyID.Bytes(), size.String(), location.String()).
		Order("received_at ASC, batch_number ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	batches := make([]*batch.InventoryBatch, 0, len(dtos))
	for _, dto := range dtos {
		b, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		batches = append(batches, b)
	}

	return batches, nil
}

// Reserve takes qty units from the batch's available quantity. The check and
// the decrement are one conditional UPDATE, so concurrent reservations can
// never overdraw the batch: the loser's update matches no row and fails with
// InsufficientStock.
func (r *GormBatchRepository) Reserve(ctx context.Context, batchID kernel.UUID, qty int) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_batches
		SET available_qty = available_qty - ?
		WHERE id = ? AND available_qty >= ?
	`, qty, batchID.Bytes(), qty)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		available, err := r.availableQty(ctx, batchID)
		if err != nil {
			return err
		}
		return errs.NewInsufficientStockError(batchID.String(), qty, available)
	}

	return nil
}

// Release returns qty units to the batch's available quantity.
func (r *GormBatchRepository) Release(ctx context.Context, batchID kernel.UUID, qty int) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE inventory_batches
		SET available_qty = available_qty + ?
		WHERE id = ?
	`, qty, batchID.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("batch", batchID.String())
	}

	return nil
}

func (r *GormBatchRepository) availableQty(ctx context.Context, batchID kernel.UUID) (int, error) {
	var dto BatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", batchID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errs.NewObjectNotFoundError("batch", batchID.String())
		}
		return 0, err
	}
	return dto.AvailableQty, nil
}
