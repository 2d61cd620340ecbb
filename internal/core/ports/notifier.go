package ports

import (
	"context"

	"laundry/internal/core/domain/model/notification"
)

// Notifier delivers a rendered message over one channel.
type Notifier interface {
	Notify(ctx context.Context, message *notification.Message) error
}
