package picklistrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picklist"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPickListRepository implements PickListRepository using GORM.
type GormPickListRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickListRepository creates a new GORM pick list repository.
func NewGormPickListRepository(db *gorm.DB, tracker aggregateTracker) *GormPickListRepository {
	return &GormPickListRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pick list with its items to the database.
func (r *GormPickListRepository) Add(ctx context.Context, aggregate *picklist.PickList) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	header, items, picks := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Create(&header).Error; err != nil {
		return err
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	if len(picks) > 0 {
		if err := db.Create(&picks).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing pick list to the database. Item rows are updated
// in place; allocations are replaced wholesale because picks have no
// identity beyond (item, batch).
func (r *GormPickListRepository) Update(ctx context.Context, aggregate *picklist.PickList) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	header, items, picks := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&PickListDTO{}).Where("id = ?", header.ID).Updates(map[string]any{
		"status":      header.Status,
		"assigned_to": header.AssignedTo,
		"trolleys":    header.Trolleys,
		"note":        header.Note,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pick list", aggregate.ID().String())
	}

	itemIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
		if err := db.Model(&PickItemDTO{}).Where("id = ?", item.ID).
			Update("status", item.Status).Error; err != nil {
			return err
		}
	}

	if err := db.Delete(&BatchPickDTO{}, "pick_item_id IN ?", itemIDs).Error; err != nil {
		return err
	}
	if len(picks) > 0 {
		if err := db.Create(&picks).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pick list by ID, fully loaded with items and allocations.
func (r *GormPickListRepository) Get(ctx context.Context, id kernel.UUID) (*picklist.PickList, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var header PickListDTO
	if err := r.db.WithContext(ctx).First(&header, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pick list", id.String())
		}
		return nil, err
	}

	return r.load(ctx, header)
}

// GetByOrder retrieves the pick list fulfilling the given order.
func (r *GormPickListRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*picklist.PickList, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var header PickListDTO
	if err := r.db.WithContext(ctx).First(&header, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pick list for order", orderID.String())
		}
		return nil, err
	}

	return r.load(ctx, header)
}

// GetByItem retrieves the pick list owning the given pick item.
func (r *GormPickListRepository) GetByItem(ctx context.Context, itemID kernel.UUID) (*picklist.PickList, error) {
	if err := itemID.Validate(); err != nil {
		return nil, err
	}

	var item PickItemDTO
	if err := r.db.WithContext(ctx).First(&item, "id = ?", itemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pick item", itemID.String())
		}
		return nil, err
	}

	var header PickListDTO
	if err := r.db.WithContext(ctx).First(&header, "id = ?", item.PickListID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pick list", item.PickListID.String())
		}
		return nil, err
	}

	return r.load(ctx, header)
}

// GetAllOpen retrieves every pick list not yet completed, ordered by
// sequence ascending.
func (r *GormPickListRepository) GetAllOpen(ctx context.Context) ([]*picklist.PickList, error) {
	var headers []PickListDTO
	err := r.db.WithContext(ctx).
		Where("status != ?", int(picklist.Completed)).
		Order("sequence ASC").
		Find(&headers).Error
	if err != nil {
		return nil, err
	}

	lists := make([]*picklist.PickList, 0, len(headers))
	for _, header := range headers {
		list, loadErr := r.load(ctx, header)
		if loadErr != nil {
			return nil, loadErr
		}
		lists = append(lists, list)
	}

	return lists, nil
}

func (r *GormPickListRepository) load(ctx context.Context, header PickListDTO) (*picklist.PickList, error) {
	var items []PickItemDTO
	if err := r.db.WithContext(ctx).Find(&items, "pick_list_id = ?", header.ID).Error; err != nil {
		return nil, err
	}

	itemIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	var picks []BatchPickDTO
	if len(itemIDs) > 0 {
		if err := r.db.WithContext(ctx).Find(&picks, "pick_item_id IN ?", itemIDs).Error; err != nil {
			return nil, err
		}
	}

	return toDomain(header, items, picks)
}
