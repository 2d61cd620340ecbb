package ports

import (
	"context"

	"laundry/internal/core/domain/model/notification"
)

// OutboxRepository stores notifications written alongside order changes.
type OutboxRepository interface {
	Add(ctx context.Context, messages ...*notification.Message) error

	// ClaimPending locks up to limit pending messages, oldest first, skipping rows
	// locked by a concurrent dispatcher. Must run inside a transaction.
	ClaimPending(ctx context.Context, limit int) ([]*notification.Message, error)

	Update(ctx context.Context, message *notification.Message) error
}
