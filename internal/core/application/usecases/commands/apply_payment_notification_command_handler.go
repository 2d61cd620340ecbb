package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// ApplyPaymentNotificationCommandHandler folds a gateway webhook into the order's
// payment status. Repeated or stale notifications leave the order untouched.
type ApplyPaymentNotificationCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

func NewApplyPaymentNotificationCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
) ApplyPaymentNotificationCommandHandler {
	return ApplyPaymentNotificationCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle returns whether the payment status changed. Unsigned or badly signed
// notifications are Forbidden; an unknown order number yields ObjectNotFoundError.
func (h *ApplyPaymentNotificationCommandHandler) Handle(ctx context.Context, cmd ApplyPaymentNotificationCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	n := cmd.Notification()
	if n.SignatureKey == "" || !h.gateway.VerifyNotification(n) {
		return false, errs.NewForbiddenError("payment notification", "order "+n.OrderRef)
	}

	return applyPaymentState(ctx, h.uowFactory, func(repo ports.OrderRepository) (*order.Order, error) {
		return repo.GetByNumber(ctx, n.OrderRef)
	}, n.TransactionStatus, n.FraudStatus, time.Now())
}

// applyPaymentState reloads the order inside a fresh transaction and applies the
// gateway's view of the payment. Shared by the webhook and the reconciliation.
func applyPaymentState(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	load func(ports.OrderRepository) (*order.Order, error),
	transactionStatus, fraudStatus string,
	now time.Time,
) (bool, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := load(orderRepo)
	if err != nil {
		return false, err
	}

	if !o.ApplyPaymentNotification(transactionStatus, fraudStatus, now) {
		return false, nil
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}
