package queries

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrQuoteCourierRatesQueryIsNotConstructed = errors.New(
	"QuoteCourierRatesQuery must be created via NewQuoteCourierRatesQuery constructor",
)

// Leg is the direction of a courier trip relative to the branch.
type Leg string

const (
	// LegPickup carries the laundry from the customer to the branch.
	LegPickup Leg = "pickup"
	// LegDelivery carries it from the branch back to the customer.
	LegDelivery Leg = "delivery"
)

func ParseLeg(s string) (Leg, error) {
	switch Leg(s) {
	case LegPickup, LegDelivery:
		return Leg(s), nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not one of pickup, delivery", s))
}

// Description is the customer-facing label of the leg.
func (l Leg) Description() string {
	if l == LegPickup {
		return "Antar cucian ke laundry"
	}
	return "Antar cucian ke customer"
}

// QuoteCourierRatesQuery asks the courier provider for gojek and grab options
// between a branch and the customer. Zero weight and value use the provider defaults.
type QuoteCourierRatesQuery struct {
	branchID      kernel.UUID
	leg           Leg
	customer      kernel.Location
	weightGrams   int
	declaredValue int64

	guard guard.ConstructorGuard
}

func NewQuoteCourierRatesQuery(
	branchID kernel.UUID,
	leg Leg,
	customer kernel.Location,
	weightGrams int,
	declaredValue int64,
) (QuoteCourierRatesQuery, error) {
	var errList []error
	if err := branchID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("branch_id", err))
	}
	if _, err := ParseLeg(string(leg)); err != nil {
		errList = append(errList, err)
	}
	if err := customer.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("destination", err))
	}
	if weightGrams < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("weight", weightGrams, 0, "unbounded"))
	}
	if declaredValue < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("value", declaredValue, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return QuoteCourierRatesQuery{}, err
	}

	return QuoteCourierRatesQuery{
		branchID:      branchID,
		leg:           leg,
		customer:      customer,
		weightGrams:   weightGrams,
		declaredValue: declaredValue,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteCourierRatesQuery) Validate() error {
	return q.guard.Validate(ErrQuoteCourierRatesQueryIsNotConstructed)
}

func (q QuoteCourierRatesQuery) BranchID() kernel.UUID     { return q.branchID }
func (q QuoteCourierRatesQuery) Leg() Leg                  { return q.leg }
func (q QuoteCourierRatesQuery) Customer() kernel.Location { return q.customer }
func (q QuoteCourierRatesQuery) WeightGrams() int          { return q.weightGrams }
func (q QuoteCourierRatesQuery) DeclaredValue() int64      { return q.declaredValue }

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type BranchView struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Address   string   `json:"detail_address"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type CourierRates struct {
	Branch          BranchView           `json:"branch"`
	Type            Leg                  `json:"type"`
	TypeDescription string               `json:"type_description"`
	Origin          Point                `json:"origin"`
	Destination     Point                `json:"destination"`
	Rates           []order.CourierQuote `json:"rates"`
}
