// Package orderrepo persists order aggregates: the trolley count and the
// picking/readiness/dispatch status the load workflow pivots on.
package orderrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is indexed because dispatch readiness checks filter on
// it.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Trolleys          int
	Status            int `gorm:"index"`
	PreDispatchStatus int
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		Trolleys:          aggregate.Trolleys(),
		Status:            int(aggregate.Status()),
		PreDispatchStatus: int(aggregate.PreDispatchStatus()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.Trolleys,
		order.Status(dto.Status), order.Status(dto.PreDispatchStatus))
}
