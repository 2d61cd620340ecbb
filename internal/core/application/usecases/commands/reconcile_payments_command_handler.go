package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

type ReconcilePaymentsResult struct {
	Checked int
	Updated int
	Failed  int
}

// ReconcilePaymentsCommandHandler polls the gateway for stale pending payments
// and applies the result with the webhook rules. One order failing does not
// stop the others; the per-order errors are joined in the returned error.
type ReconcilePaymentsCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

func NewReconcilePaymentsCommandHandler(uowFactory OrderUoWFactory, gateway ports.PaymentGateway) ReconcilePaymentsCommandHandler {
	return ReconcilePaymentsCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

func (h *ReconcilePaymentsCommandHandler) Handle(ctx context.Context, cmd ReconcilePaymentsCommand) (ReconcilePaymentsResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcilePaymentsResult{}, err
	}

	now := time.Now()
	pending, err := h.uowFactory.Create().OrderRepository().FindPendingOnlinePayments(ctx, now.Add(-cmd.OlderThan()), cmd.Limit())
	if err != nil {
		return ReconcilePaymentsResult{}, err
	}

	var (
		result  ReconcilePaymentsResult
		errList []error
	)
	for _, o := range pending {
		if ctx.Err() != nil {
			errList = append(errList, ctx.Err())
			break
		}
		result.Checked++

		state, err := h.gateway.GetStatus(ctx, o.Number().String())
		if err != nil {
			result.Failed++
			errList = append(errList, fmt.Errorf("order %s: %w", o.Number(), err))
			continue
		}

		id := o.ID()
		changed, err := applyPaymentState(ctx, h.uowFactory, func(repo ports.OrderRepository) (*order.Order, error) {
			return repo.Get(ctx, id)
		}, state.TransactionStatus, state.FraudStatus, time.Now())
		if err != nil {
			result.Failed++
			errList = append(errList, fmt.Errorf("order %s: %w", o.Number(), err))
			continue
		}
		if changed {
			result.Updated++
		}
	}

	return result, errors.Join(errList...)
}
