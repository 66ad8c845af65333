// Package picklistrepo persists pick list aggregates across three tables:
// the list header, its items and the batch allocations per item. The
// aggregate always loads and stores as a whole.
package picklistrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picklist"

	"github.com/google/uuid"
)

// PickListDTO represents the database structure for the pick list header.
type PickListDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Sequence   int       `gorm:"uniqueIndex"`
	Status     int       `gorm:"index"`
	AssignedTo string
	Trolleys   int
	Note       string
}

// TableName overrides GORM's default naming to use "pick_lists".
func (PickListDTO) TableName() string {
	return "pick_lists"
}

// PickItemDTO represents the database structure for one line on a pick list.
type PickItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	PickListID uuid.UUID `gorm:"type:uuid;index"`
	VarietyID  uuid.UUID `gorm:"type:uuid"`
	Size       string    `gorm:"type:varchar(16)"`
	Location   string    `gorm:"type:varchar(32)"`
	TargetQty  int
	Status     int
}

// TableName overrides GORM's default naming to use "pick_items".
func (PickItemDTO) TableName() string {
	return "pick_items"
}

// BatchPickDTO represents one batch allocation on a pick item.
type BatchPickDTO struct {
	PickItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatchID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Qty        int
}

// TableName overrides GORM's default naming to use "batch_picks".
func (BatchPickDTO) TableName() string {
	return "batch_picks"
}

func fromDomain(aggregate *picklist.PickList) (PickListDTO, []PickItemDTO, []BatchPickDTO) {
	header := PickListDTO{
		ID:         aggregate.ID().Bytes(),
		OrderID:    aggregate.OrderID().Bytes(),
		Sequence:   aggregate.Sequence(),
		Status:     int(aggregate.Status()),
		AssignedTo: aggregate.AssignedTo(),
		Trolleys:   aggregate.Trolleys(),
		Note:       aggregate.Note(),
	}

	items := make([]PickItemDTO, 0, len(aggregate.Items()))
	picks := make([]BatchPickDTO, 0)
	for _, item := range aggregate.Items() {
		items = append(items, PickItemDTO{
			ID:         item.ID().Bytes(),
			PickListID: aggregate.ID().Bytes(),
			VarietyID:  item.VarietyID().Bytes(),
			Size:       item.Size().String(),
			Location:   item.Location().String(),
			TargetQty:  item.TargetQty(),
			Status:     int(item.Status()),
		})

		for _, pick := range item.Picks() {
			picks = append(picks, BatchPickDTO{
				PickItemID: item.ID().Bytes(),
				BatchID:    pick.BatchID().Bytes(),
				Qty:        pick.Qty(),
			})
		}
	}

	return header, items, picks
}

func toDomain(header PickListDTO, items []PickItemDTO, picks []BatchPickDTO) (*picklist.PickList, error) {
	picksByItem := make(map[uuid.UUID][]picklist.BatchPick, len(items))
	for _, dto := range picks {
		batchID, err := kernel.UUIDFromBytes(dto.BatchID[:])
		if err != nil {
			return nil, err
		}

		pick, err := picklist.NewBatchPick(batchID, dto.Qty)
		if err != nil {
			return nil, err
		}
		picksByItem[dto.PickItemID] = append(picksByItem[dto.PickItemID], pick)
	}

	restored := make([]*picklist.PickItem, 0, len(items))
	for _, dto := range items {
		item, err := itemToDomain(dto, picksByItem[dto.ID])
		if err != nil {
			return nil, err
		}
		restored = append(restored, item)
	}

	id, err := kernel.UUIDFromBytes(header.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(header.OrderID[:])
	if err != nil {
		return nil, err
	}

	return picklist.RestorePickList(
		id,
		orderID,
		header.Sequence,
		picklist.Status(header.Status),
		header.AssignedTo,
		header.Trolleys,
		header.Note,
		restored,
	)
}

func itemToDomain(dto PickItemDTO, picks []picklist.BatchPick) (*picklist.PickItem, error) {
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

	return picklist.RestorePickItem(
		id, varietyID, size, location, dto.TargetQty, picklist.ItemStatus(dto.Status), picks)
}
