package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrChooseDeliveryPaymentCommandIsNotConstructed = errors.New(
	"ChooseDeliveryPaymentCommand must be created via NewChooseDeliveryPaymentCommand constructor",
)

// ChooseDeliveryPaymentCommand is the customer's one-time delivery and payment
// choice for a ready order. The courier quote only matters for gojek and grab.
type ChooseDeliveryPaymentCommand struct { //nolint:recvcheck //using for validation
	actor          kernel.UUID
	orderID        kernel.UUID
	deliveryMethod order.DeliveryMethod
	paymentChoice  order.PaymentChoice
	courier        *order.CourierSnapshot

	guard guard.ConstructorGuard
}

func NewChooseDeliveryPaymentCommand(
	actor, orderID kernel.UUID,
	deliveryMethod order.DeliveryMethod,
	paymentChoice order.PaymentChoice,
	courier *order.CourierQuote,
) (ChooseDeliveryPaymentCommand, error) {
	cmd := ChooseDeliveryPaymentCommand{
		deliveryMethod: deliveryMethod,
		paymentChoice:  paymentChoice,
		guard:          guard.NewConstructorGuard(),
	}

	var actorErr, orderErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := orderID.Validate(); err != nil {
		orderErr = errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	if err := errors.Join(actorErr, orderErr, cmd.setCourier(deliveryMethod, courier)); err != nil {
		return ChooseDeliveryPaymentCommand{}, err
	}

	cmd.actor = actor
	cmd.orderID = orderID
	return cmd, nil
}

func (c ChooseDeliveryPaymentCommand) Validate() error {
	return c.guard.Validate(ErrChooseDeliveryPaymentCommandIsNotConstructed)
}

func (c ChooseDeliveryPaymentCommand) Actor() kernel.UUID {
	return c.actor
}

func (c ChooseDeliveryPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChooseDeliveryPaymentCommand) DeliveryMethod() order.DeliveryMethod {
	return c.deliveryMethod
}

func (c ChooseDeliveryPaymentCommand) PaymentChoice() order.PaymentChoice {
	return c.paymentChoice
}

func (c ChooseDeliveryPaymentCommand) Courier() *order.CourierSnapshot {
	return c.courier
}

func (c *ChooseDeliveryPaymentCommand) setCourier(method order.DeliveryMethod, quote *order.CourierQuote) error {
	if quote == nil || !method.IsCourier() {
		return nil
	}
	snapshot, err := order.NewCourierSnapshot(*quote)
	if err != nil {
		return err
	}
	c.courier = &snapshot
	return nil
}
