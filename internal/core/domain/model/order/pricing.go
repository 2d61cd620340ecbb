package order

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrPricingIsNotConstructed = errors.New("Pricing must be created via NewPricing")

// PricingPath records which formula produced the subtotal.
type PricingPath int

const (
	PricingUnknown PricingPath = iota
	PricingItemized
	PricingWeight
)

func ParsePricingPath(s string) (PricingPath, error) {
	switch s {
	case "itemized":
		return PricingItemized, nil
	case "weight":
		return PricingWeight, nil
	default:
		return PricingUnknown, errs.NewValueIsInvalidErrorWithCause("pricing_path", fmt.Errorf("%q is not a valid pricing path", s))
	}
}

func (p PricingPath) String() string {
	switch p {
	case PricingItemized:
		return "itemized"
	case PricingWeight:
		return "weight"
	default:
		return "unknown"
	}
}

// Pricing is the estimate frozen at creation.
// TotalAmount is always Subtotal + PickupShippingFee.
type Pricing struct {
	path              PricingPath
	items             []LineItem
	estimatedWeight   int
	pricePerKg        int64
	subtotal          int64
	pickupShippingFee int64
	guard             guard.ConstructorGuard
}

// NewPricing checks that the subtotal matches the chosen path:
// itemized sums the line subtotals, weight multiplies estimatedWeight by pricePerKg.
func NewPricing(
	path PricingPath,
	items []LineItem,
	estimatedWeight int,
	pricePerKg int64,
	subtotal int64,
	pickupShippingFee int64,
) (Pricing, error) {
	var errList []error

	switch path {
	case PricingItemized:
		if len(items) == 0 {
			errList = append(errList, errs.NewValueIsRequiredError("items_detail"))
		}
		for _, item := range items {
			errList = append(errList, item.Validate())
		}
		if sum := SumSubtotals(items); sum != subtotal {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"subtotal", fmt.Errorf("%d does not equal the sum of item subtotals %d", subtotal, sum)))
		}
	case PricingWeight:
		if want := int64(estimatedWeight) * pricePerKg; want != subtotal {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"subtotal", fmt.Errorf("%d does not equal estimated weight times price per kg %d", subtotal, want)))
		}
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("pricing_path", fmt.Errorf("%d is not a valid pricing path", path)))
	}

	if estimatedWeight < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("estimated_weight", estimatedWeight, 0, "unbounded"))
	}
	errList = append(errList,
		requireNonNegative("price_per_kg", pricePerKg),
		requireNonNegative("subtotal", subtotal),
		requireNonNegative("pickup_shipping_fee", pickupShippingFee),
	)

	if err := errors.Join(errList...); err != nil {
		return Pricing{}, err
	}

	return Pricing{
		path:              path,
		items:             append([]LineItem(nil), items...),
		estimatedWeight:   estimatedWeight,
		pricePerKg:        pricePerKg,
		subtotal:          subtotal,
		pickupShippingFee: pickupShippingFee,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

func (p Pricing) Path() PricingPath {
	return p.path
}

// Items returns a copy of the estimate lines; empty on the weight path.
func (p Pricing) Items() []LineItem {
	return append([]LineItem(nil), p.items...)
}

func (p Pricing) EstimatedWeight() int {
	return p.estimatedWeight
}

func (p Pricing) PricePerKg() int64 {
	return p.pricePerKg
}

func (p Pricing) Subtotal() int64 {
	return p.subtotal
}

func (p Pricing) PickupShippingFee() int64 {
	return p.pickupShippingFee
}

func (p Pricing) TotalAmount() int64 {
	return p.subtotal + p.pickupShippingFee
}
