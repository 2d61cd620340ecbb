package ports

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
)

// CatalogRepository reads laundry items.
type CatalogRepository interface {
	// GetItems returns the items found among ids; missing ids are simply absent.
	GetItems(ctx context.Context, ids []kernel.UUID) ([]*catalog.Item, error)
}
