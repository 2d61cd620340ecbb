package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// InitiatePaymentResult is the checkout handed to the customer.
type InitiatePaymentResult struct {
	Order   *order.Order
	Session order.PaymentSession
	// Reused is true when a stored, unexpired session was returned.
	Reused bool
}

// InitiatePaymentCommandHandler creates a hosted payment session.
//
// The gateway is called between two short phases: a read that checks ownership
// and payability, and a transaction that re-checks the order and stores the
// session. No database transaction is open while the gateway is called.
type InitiatePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

func NewInitiatePaymentCommandHandler(uowFactory OrderUoWFactory, gateway ports.PaymentGateway) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

func (h *InitiatePaymentCommandHandler) Handle(ctx context.Context, cmd InitiatePaymentCommand) (InitiatePaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return InitiatePaymentResult{}, err
	}

	reader := h.uowFactory.Create()
	o, err := reader.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return InitiatePaymentResult{}, err
	}
	if err = o.AuthorizeCustomer(cmd.Actor()); err != nil {
		return InitiatePaymentResult{}, err
	}
	if err = o.CheckPayable(); err != nil {
		return InitiatePaymentResult{}, err
	}
	if session, ok := o.ActivePaymentSession(time.Now()); ok {
		return InitiatePaymentResult{Order: o, Session: session, Reused: true}, nil
	}

	b, err := reader.BranchRepository().Get(ctx, o.BranchID())
	if err != nil {
		return InitiatePaymentResult{}, err
	}

	session, err := h.gateway.CreateSession(ctx, PaymentRequestFor(o, b, cmd.Email()))
	if err != nil {
		return InitiatePaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return InitiatePaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err = orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return InitiatePaymentResult{}, err
	}
	if err = o.AttachPaymentSession(session, time.Now()); err != nil {
		return InitiatePaymentResult{}, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return InitiatePaymentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return InitiatePaymentResult{}, err
	}

	return InitiatePaymentResult{Order: o, Session: session}, nil
}

// PaymentRequestFor itemizes the amount due: the laundry service, pickup and
// delivery fees when charged, and the discount as a negative line.
func PaymentRequestFor(o *order.Order, b *branch.Branch, email string) ports.PaymentRequest {
	lines := []ports.PaymentLine{{
		ID:       "laundry-service",
		Name:     "Laundry Service - " + b.Name(),
		Price:    o.Subtotal(),
		Quantity: 1,
	}}
	if fee := o.Pricing().PickupShippingFee(); fee > 0 {
		lines = append(lines, ports.PaymentLine{ID: "pickup-fee", Name: "Biaya Pickup", Price: fee, Quantity: 1})
	}
	if fee := o.DeliveryFee(); fee > 0 {
		lines = append(lines, ports.PaymentLine{ID: "delivery-fee", Name: "Biaya Delivery", Price: fee, Quantity: 1})
	}
	if discount := o.DiscountAmount(); discount > 0 {
		name := "Diskon"
		if o.DiscountCode() != "" {
			name += " " + o.DiscountCode()
		}
		lines = append(lines, ports.PaymentLine{ID: "discount", Name: name, Price: -discount, Quantity: 1})
	}

	contact := o.Contact()
	return ports.PaymentRequest{
		OrderRef:    o.Number().String(),
		GrossAmount: o.AmountDue(),
		Customer: ports.PaymentCustomer{
			Name:  contact.Name(),
			Email: email,
			Phone: contact.Phone(),
		},
		Lines: lines,
	}
}
