// Package batchrepo persists the inventory batch ledger. Besides the usual
// aggregate mapping it implements the atomic reserve/release operations the
// allocator depends on.
package batchrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/batch"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO represents the database structure for persisting inventory
// batches. The (variety, size, location) columns are indexed together
// because candidate lookup always filters on all three.
type BatchDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchNumber  int       `gorm:"uniqueIndex"`
	VarietyID    uuid.UUID `gorm:"type:uuid;index:idx_batches_article"`
	Size         string    `gorm:"type:varchar(16);index:idx_batches_article"`
	Location     string    `gorm:"type:varchar(32);index:idx_batches_article"`
	ReceivedAt   time.Time
	AvailableQty int
}

// TableName overrides GORM's default naming to use "inventory_batches".
func (BatchDTO) TableName() string {
	return "inventory_batches"
}

func fromDomain(aggregate *batch.InventoryBatch) BatchDTO {
	return BatchDTO{
		ID:           aggregate.ID().Bytes(),
		BatchNumber:  aggregate.BatchNumber(),
		VarietyID:    aggregate.VarietyID().Bytes(),
		Size:         aggregate.Size().String(),
		Location:     aggregate.Location().String(),
		ReceivedAt:   aggregate.ReceivedAt(),
		AvailableQty: aggregate.AvailableQty(),
	}
}

func toDomain(dto BatchDTO) (*batch.InventoryBatch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	varietyID, err := kernel.UUIDFromBytes(dto.VarietyID[:])
	if err != nil {
		return nil, err
	}

	size, err := kernel.NewSizeCode(dto.Size)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocationCode(dto.Location)
	if err != nil {
		return nil, err
	}

	return batch.RestoreInventoryBatch(
		id, dto.BatchNumber, varietyID, size, location, dto.ReceivedAt, dto.AvailableQty)
}
