package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrGetCustomerOrderStatsQueryIsNotConstructed = errors.New(
	"GetCustomerOrderStatsQuery must be created via NewGetCustomerOrderStatsQuery constructor",
)

type GetCustomerOrderStatsQuery struct {
	actor kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetCustomerOrderStatsQuery(actor kernel.UUID) (GetCustomerOrderStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetCustomerOrderStatsQuery{}, errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return GetCustomerOrderStatsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrderStatsQueryIsNotConstructed)
}

func (q GetCustomerOrderStatsQuery) Actor() kernel.UUID {
	return q.actor
}

// CustomerOrderStats counts the actor's orders. Active means neither completed nor cancelled.
type CustomerOrderStats struct {
	TotalOrders     int64 `json:"total_orders"`
	CompletedOrders int64 `json:"completed_orders"`
	ActiveOrders    int64 `json:"active_orders"`
}
