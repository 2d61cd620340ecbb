package ports

import (
	"context"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
)

// BranchRepository reads branches. Branch management lives outside this service.
type BranchRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)

	// GetByOwner returns the single branch run by ownerID.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) (*branch.Branch, error)
}
