package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrApplyPaymentNotificationCommandIsNotConstructed = errors.New(
	"ApplyPaymentNotificationCommand must be created via NewApplyPaymentNotificationCommand constructor",
)

// ApplyPaymentNotificationCommand wraps a payment gateway webhook.
type ApplyPaymentNotificationCommand struct { //nolint:recvcheck //using for validation
	notification ports.PaymentNotification

	guard guard.ConstructorGuard
}

func NewApplyPaymentNotificationCommand(n ports.PaymentNotification) (ApplyPaymentNotificationCommand, error) {
	var errList []error
	if strings.TrimSpace(n.OrderRef) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("order_id"))
	}
	if strings.TrimSpace(n.TransactionStatus) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("transaction_status"))
	}
	if err := errors.Join(errList...); err != nil {
		return ApplyPaymentNotificationCommand{}, err
	}

	return ApplyPaymentNotificationCommand{
		notification: n,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyPaymentNotificationCommand) Validate() error {
	return c.guard.Validate(ErrApplyPaymentNotificationCommandIsNotConstructed)
}

func (c ApplyPaymentNotificationCommand) Notification() ports.PaymentNotification {
	return c.notification
}
