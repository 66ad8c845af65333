// Package loadrepo persists delivery run aggregates: the run header and the
// ordered set of loaded orders.
package loadrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO represents the database structure for the delivery run header.
type LoadDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ScheduledDate   time.Time `gorm:"index"`
	Carrier         string
	VehicleCapacity int
	Status          int `gorm:"index"`
	OverrideReason  string
	Version         int
}

// TableName overrides GORM's default naming to use "loads".
func (LoadDTO) TableName() string {
	return "loads"
}

// LoadItemDTO represents one loaded order with its unloading sequence.
type LoadItemDTO struct {
	LoadID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Sequence int
	Trolleys int
}

// TableName overrides GORM's default naming to use "load_items".
func (LoadItemDTO) TableName() string {
	return "load_items"
}

func fromDomain(aggregate *load.DeliveryRun) (LoadDTO, []LoadItemDTO) {
	header := LoadDTO{
		ID:              aggregate.ID().Bytes(),
		ScheduledDate:   aggregate.ScheduledDate(),
		Carrier:         aggregate.Carrier(),
		VehicleCapacity: aggregate.VehicleCapacity(),
		Status:          int(aggregate.Status()),
		OverrideReason:  aggregate.OverrideReason(),
		Version:         aggregate.Version(),
	}

	items := make([]LoadItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LoadItemDTO{
			LoadID:   aggregate.ID().Bytes(),
			OrderID:  item.OrderID().Bytes(),
			Sequence: item.Sequence(),
			Trolleys: item.Trolleys(),
		})
	}

	return header, items
}

func toDomain(header LoadDTO, items []LoadItemDTO) (*load.DeliveryRun, error) {
	id, err := kernel.UUIDFromBytes(header.ID[:])
	if err != nil {
		return nil, err
	}

	restored := make([]load.LoadItem, 0, len(items))
	for _, dto := range items {
		orderID, idErr := kernel.UUIDFromBytes(dto.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := load.NewLoadItem(orderID, dto.Sequence, dto.Trolleys)
		if itemErr != nil {
			return nil, itemErr
		}
		restored = append(restored, item)
	}

	return load.RestoreDeliveryRun(
		id,
		header.ScheduledDate,
		header.Carrier,
		header.VehicleCapacity,
		load.Status(header.Status),
		header.OverrideReason,
		header.Version,
		restored,
	)
}
