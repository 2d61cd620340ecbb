package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// RecentOrdersLimit is how many of the newest orders the dashboard lists.
const RecentOrdersLimit = 10

var ErrGetBranchStatsQueryIsNotConstructed = errors.New(
	"GetBranchStatsQuery must be created via NewGetBranchStatsQuery constructor",
)

// GetBranchStatsQuery builds the dashboard of the branch run by actor. The
// revenue windows are the day, week (starting Monday) and month containing at,
// in at's location.
type GetBranchStatsQuery struct {
	actor kernel.UUID
	at    time.Time
	guard guard.ConstructorGuard
}

func NewGetBranchStatsQuery(actor kernel.UUID, at time.Time) (GetBranchStatsQuery, error) {
	var actorErr, atErr error
	if err := actor.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	if at.IsZero() {
		atErr = errs.NewValueIsRequiredError("at")
	}
	if err := errors.Join(actorErr, atErr); err != nil {
		return GetBranchStatsQuery{}, err
	}
	return GetBranchStatsQuery{actor: actor, at: at, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBranchStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchStatsQueryIsNotConstructed)
}

func (q GetBranchStatsQuery) Actor() kernel.UUID {
	return q.actor
}

func (q GetBranchStatsQuery) At() time.Time {
	return q.at
}

// Revenue sums the total amount of paid orders created in each window.
type Revenue struct {
	Today int64 `json:"today"`
	Week  int64 `json:"week"`
	Month int64 `json:"month"`
}

type BranchStats struct {
	BranchID       string           `json:"branch_id"`
	TotalOrders    int64            `json:"total_orders"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	Revenue        Revenue          `json:"revenue"`
	RecentOrders   []OrderView      `json:"recent_orders"`
}
