// Package sequencerepo implements the named counter allocator on a single
// sequences table. The draw is one upsert, so two concurrent draws from the
// same counter serialize on the row and never receive the same value.
package sequencerepo

import (
	"context"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// SequenceDTO represents one named counter row.
type SequenceDTO struct {
	Name  string `gorm:"primaryKey;type:varchar(64)"`
	Value int
}

// TableName overrides GORM's default naming to use "sequences".
func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormSequenceAllocator implements SequenceAllocator using GORM.
type GormSequenceAllocator struct {
	db *gorm.DB
}

// NewGormSequenceAllocator creates a new GORM sequence allocator.
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// Next atomically increments the named counter and returns its new value.
// The first draw from a fresh counter returns 1.
func (a *GormSequenceAllocator) Next(ctx context.Context, name string) (int, error) {
	if name == "" {
		return 0, errs.NewValueIsRequiredError("name")
	}

	var value int
	err := a.db.WithContext(ctx).Raw(`
		INSERT INTO sequences (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value
	`, name).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
