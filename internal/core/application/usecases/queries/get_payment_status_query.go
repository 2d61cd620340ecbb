package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrGetPaymentStatusQueryIsNotConstructed = errors.New(
	"GetPaymentStatusQuery must be created via NewGetPaymentStatusQuery constructor",
)

// GetPaymentStatusQuery reports the stored payment state next to the gateway's.
// It reads only; reconciliation is what applies the gateway state.
type GetPaymentStatusQuery struct {
	actor   kernel.UUID
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetPaymentStatusQuery(actor, orderID kernel.UUID) (GetPaymentStatusQuery, error) {
	var actorErr, orderErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := orderID.Validate(); err != nil {
		orderErr = errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	if err := errors.Join(actorErr, orderErr); err != nil {
		return GetPaymentStatusQuery{}, err
	}
	return GetPaymentStatusQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentStatusQueryIsNotConstructed)
}

func (q GetPaymentStatusQuery) Actor() kernel.UUID {
	return q.actor
}

func (q GetPaymentStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

type LocalPaymentState struct {
	OrderNumber   string `json:"order_number"`
	PaymentStatus string `json:"payment_status"`
	TotalAmount   int64  `json:"total_amount"`
}

type PaymentStatusView struct {
	Order    LocalPaymentState  `json:"order"`
	Provider ports.PaymentState `json:"midtrans"`
}
