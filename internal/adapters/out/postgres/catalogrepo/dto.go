package catalogrepo

import (
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

type LaundryItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BranchID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name       string    `gorm:"size:100;not null"`
	Unit       string    `gorm:"size:8;not null"`
	Price      int64     `gorm:"not null"`
	IsActive   bool      `gorm:"default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (LaundryItemDTO) TableName() string {
	return "laundry_items"
}

func toDomain(dto LaundryItemDTO) (*catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	unit, err := order.ParseUnit(dto.Unit)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreItem(id, branchID, categoryID, dto.Name, unit, dto.Price, dto.IsActive)
}
