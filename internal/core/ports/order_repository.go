// Package ports defines the contracts between the order lifecycle core and
// its infrastructure: repositories, the unit of work and the external gateways.
package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. A taken order number yields errs.ErrObjectAlreadyExists
	// so the caller can retry with a fresh number.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier. Inside a transaction the order
	// stays locked until commit or rollback.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByNumber retrieves an order by its ORD-YYYYMMDD-XXXXXX number.
	GetByNumber(ctx context.Context, number string) (*order.Order, error)

	// FindPendingOnlinePayments returns orders paid online whose payment is still
	// pending and that were last updated before olderThan, oldest first.
	FindPendingOnlinePayments(ctx context.Context, olderThan time.Time, limit int) ([]*order.Order, error)
}
