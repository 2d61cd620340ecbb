package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a staff status change and queues the
// customer's status notification in the same transaction.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	b, o, err := loadOwnedOrder(ctx, uow, cmd.Actor(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.UpdateStatus(cmd.Status(), cmd.Notes(), now); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = enqueue(ctx, uow, notification.KindCustomerStatusUpdate, o, b, now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// loadOwnedOrder returns the actor's branch and the order, failing with
// ForbiddenError when the actor runs no branch or a different one.
func loadOwnedOrder(ctx context.Context, uow OrderUoW, actor, orderID kernel.UUID) (*branch.Branch, *order.Order, error) {
	b, err := uow.BranchRepository().GetByOwner(ctx, actor)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil, errs.NewForbiddenError(actor, "order "+orderID.String())
	}
	if err != nil {
		return nil, nil, err
	}

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if err = o.AuthorizeBranch(b.ID()); err != nil {
		return nil, nil, err
	}
	return b, o, nil
}

func enqueue(ctx context.Context, uow OutboxRepoFactory, kind notification.Kind, o *order.Order, b *branch.Branch, now time.Time) error {
	msg, err := notification.Compose(kernel.NewUUID(), kind, o, notification.Branch{Name: b.Name(), Phone: b.Phone()}, now)
	if err != nil {
		return err
	}
	return uow.OutboxRepository().Add(ctx, msg)
}
