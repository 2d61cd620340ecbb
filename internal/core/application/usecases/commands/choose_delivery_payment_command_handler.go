package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
)

// ChooseDeliveryPaymentCommandHandler records the customer's delivery and payment
// choice. Cash settles the order in the same transaction; online payment is
// opened later through InitiatePaymentCommandHandler.
type ChooseDeliveryPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChooseDeliveryPaymentCommandHandler(uowFactory OrderUoWFactory) ChooseDeliveryPaymentCommandHandler {
	return ChooseDeliveryPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChooseDeliveryPaymentCommandHandler) Handle(ctx context.Context, cmd ChooseDeliveryPaymentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if err = o.AuthorizeCustomer(cmd.Actor()); err != nil {
		return nil, err
	}

	if err = o.ChooseDeliveryAndPayment(cmd.DeliveryMethod(), cmd.PaymentChoice(), cmd.Courier(), time.Now()); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
