package queries

import (
	"context"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetPaymentStatusQueryHandler struct {
	db      *gorm.DB
	gateway ports.PaymentGateway
}

func NewGetPaymentStatusQueryHandler(db *gorm.DB, gateway ports.PaymentGateway) GetPaymentStatusQueryHandler {
	return GetPaymentStatusQueryHandler{db: db, gateway: gateway}
}

func (h GetPaymentStatusQueryHandler) Handle(ctx context.Context, query GetPaymentStatusQuery) (PaymentStatusView, error) {
	if err := query.Validate(); err != nil {
		return PaymentStatusView{}, err
	}

	view, err := findOrder(ctx, h.db, query.OrderID())
	if err != nil {
		return PaymentStatusView{}, err
	}
	if view.CustomerID != query.Actor().Bytes() {
		return PaymentStatusView{}, errs.NewForbiddenError(query.Actor(), "order "+view.OrderNumber)
	}

	state, err := h.gateway.GetStatus(ctx, view.OrderNumber)
	if err != nil {
		return PaymentStatusView{}, err
	}

	return PaymentStatusView{
		Order: LocalPaymentState{
			OrderNumber:   view.OrderNumber,
			PaymentStatus: view.PaymentStatus,
			TotalAmount:   view.TotalAmount,
		},
		Provider: state,
	}, nil
}
