// Package commands contains the operations that change order state.
// Every handler follows the same shape: validate the command, open one unit of
// work, load, mutate through the aggregate, persist together with any outbox
// notifications, and commit. Gateway calls never happen inside the transaction.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	BranchRepoFactory interface {
		BranchRepository() ports.BranchRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW covers commands that change an existing order and may enqueue notifications.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		BranchRepoFactory
		OutboxRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW additionally reads the catalog. Used by order creation.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   items, err := uow.CatalogRepository().GetItems(ctx, ids)
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.OutboxRepository().Add(ctx, msg)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		OrderUoW
		CatalogRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// OutboxUoW is used by the notification dispatcher.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
