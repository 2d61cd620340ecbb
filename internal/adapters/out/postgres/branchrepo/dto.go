package branchrepo

import (
	"time"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type BranchDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string    `gorm:"size:100;index;not null"`
	Phone       string    `gorm:"size:20"`
	Address     string    `gorm:"column:detail_address;size:255;not null"`
	Latitude    *float64  `gorm:"type:numeric(10,8)"`
	Longitude   *float64  `gorm:"type:numeric(11,8)"`
	PricePerKg  int64     `gorm:"default:5000"`
	PickupFree  bool
	PickupGojek bool
	PickupGrab  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BranchDTO) TableName() string {
	return "branches"
}

func toDomain(dto BranchDTO) (*branch.Branch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, err := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return nil, err
		}
		location = &loc
	}

	return branch.RestoreBranch(id, ownerID, dto.Name, dto.Phone, dto.Address, location, dto.PricePerKg,
		branch.PickupOptions{Free: dto.PickupFree, Gojek: dto.PickupGojek, Grab: dto.PickupGrab})
}
