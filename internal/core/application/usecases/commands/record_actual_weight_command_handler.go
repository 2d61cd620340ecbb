package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
)

// RecordActualWeightCommandHandler stores the branch's weighing and notifies the
// customer of the actual amount. The original estimate stays on the order.
type RecordActualWeightCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRecordActualWeightCommandHandler(uowFactory OrderUoWFactory) RecordActualWeightCommandHandler {
	return RecordActualWeightCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RecordActualWeightCommandHandler) Handle(ctx context.Context, cmd RecordActualWeightCommand) (*order.Order, error) {
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

	if err = o.RecordActualWeight(cmd.Items(), cmd.Weight(), cmd.ProofVideoURL(), cmd.Notes(), now); err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = enqueue(ctx, uow, notification.KindCustomerActualWeight, o, b, now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
