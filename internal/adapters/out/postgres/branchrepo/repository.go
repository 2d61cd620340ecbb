package branchrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormBranchRepository struct {
	db *gorm.DB
}

func NewGormBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{db: db}
}

func (r *GormBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "branch", id.String(), "id = ?", id.Bytes())
}

func (r *GormBranchRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) (*branch.Branch, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "branch owner", ownerID.String(), "owner_id = ?", ownerID.Bytes())
}

func (r *GormBranchRepository) first(ctx context.Context, param, id string, query string, args ...any) (*branch.Branch, error) {
	var dto BranchDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, id)
		}
		return nil, err
	}
	return toDomain(dto)
}
