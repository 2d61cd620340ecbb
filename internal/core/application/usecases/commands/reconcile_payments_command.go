package commands

import (
	"errors"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrReconcilePaymentsCommandIsNotConstructed = errors.New(
	"ReconcilePaymentsCommand must be created via NewReconcilePaymentsCommand constructor",
)

// ReconcilePaymentsCommand asks the gateway about online payments that stayed
// pending for longer than olderThan.
type ReconcilePaymentsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration
	limit     int

	guard guard.ConstructorGuard
}

func NewReconcilePaymentsCommand(olderThan time.Duration, limit int) (ReconcilePaymentsCommand, error) {
	var ageErr, limitErr error
	if olderThan < 0 {
		ageErr = errs.NewValueIsOutOfRangeError("older_than", olderThan, 0, "unbounded")
	}
	if limit <= 0 {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}
	if err := errors.Join(ageErr, limitErr); err != nil {
		return ReconcilePaymentsCommand{}, err
	}

	return ReconcilePaymentsCommand{
		olderThan: olderThan,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcilePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentsCommandIsNotConstructed)
}

func (c ReconcilePaymentsCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c ReconcilePaymentsCommand) Limit() int {
	return c.limit
}
