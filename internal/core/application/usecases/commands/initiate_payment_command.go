package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrInitiatePaymentCommandIsNotConstructed = errors.New(
	"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
)

// InitiatePaymentCommand opens (or reuses) the hosted checkout of an order.
// Email is the actor's account email, forwarded to the gateway.
type InitiatePaymentCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.UUID
	email   string
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewInitiatePaymentCommand(actor kernel.UUID, email string, orderID kernel.UUID) (InitiatePaymentCommand, error) {
	var actorErr, orderErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if err := orderID.Validate(); err != nil {
		orderErr = errs.NewValueIsRequiredErrorWithCause("order_id", err)
	}
	if err := errors.Join(actorErr, orderErr); err != nil {
		return InitiatePaymentCommand{}, err
	}

	return InitiatePaymentCommand{
		actor:   actor,
		email:   email,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

func (c InitiatePaymentCommand) Actor() kernel.UUID {
	return c.actor
}

func (c InitiatePaymentCommand) Email() string {
	return c.email
}

func (c InitiatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}
