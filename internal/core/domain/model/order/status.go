package order

import (
	"fmt"
	"slices"

	"laundry/internal/pkg/errs"
)

// Status is the fulfillment state of an order.
//
//	pending ─┬─> processing ─> washing ─> ready ─┬─> delivering ─> completed
//	         │   (staff may move freely between   └─> completed (self pickup)
//	         └─> cancelled   non-terminal states)
//
// completed and cancelled are terminal.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusProcessing
	StatusWashing
	StatusReady
	StatusPickedUp
	StatusDelivering
	StatusCompleted
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusWashing:    "washing",
		StatusReady:      "ready",
		StatusPickedUp:   "picked_up",
		StatusDelivering: "delivering",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{
		StatusPending, StatusProcessing, StatusWashing, StatusReady,
		StatusPickedUp, StatusDelivering, StatusCompleted, StatusCancelled,
	}
}

// ParseStatus maps the wire/storage code to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("order_status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause("order_status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further status transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Action names who drives a status change.
type Action int

const (
	ActionUnknown Action = iota
	// ActionStaffUpdate is a branch owner setting the status by hand.
	ActionStaffUpdate
	// ActionSettleCash is a customer settling a ready order in cash.
	ActionSettleCash
)

func (a Action) String() string {
	switch a {
	case ActionStaffUpdate:
		return "staff_update"
	case ActionSettleCash:
		return "settle_cash"
	default:
		return "unknown"
	}
}

// transitionTable lists, per action, the target statuses reachable from each source.
// A source missing from an action's row accepts nothing for that action.
//
// Staff updates stay permissive across non-terminal statuses (branches re-order
// steps in practice, including stepping back); terminal statuses are closed.
func transitionTable() map[Action]map[Status][]Status {
	open := Statuses()
	return map[Action]map[Status][]Status{
		ActionStaffUpdate: {
			StatusPending:    open,
			StatusProcessing: open,
			StatusWashing:    open,
			StatusReady:      open,
			StatusPickedUp:   open,
			StatusDelivering: open,
		},
		ActionSettleCash: {
			StatusReady: {StatusCompleted, StatusDelivering},
		},
	}
}

// CanTransition reports whether action may move s to target.
func (s Status) CanTransition(action Action, target Status) bool {
	targets, ok := transitionTable()[action][s]
	return ok && slices.Contains(targets, target)
}

// Transition validates the move and returns the new status.
func (s Status) Transition(action Action, target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}

	if !s.CanTransition(action, target) {
		reason := fmt.Sprintf("%s does not allow this move", action)
		if s.IsTerminal() {
			reason = "order is terminal"
		}
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String(), reason)
	}

	return target, nil
}
