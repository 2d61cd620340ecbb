package services

import (
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// ErrMissingShippingFee is returned when a courier pickup arrives without the quoted fee.
var ErrMissingShippingFee = errs.NewValueIsRequiredErrorWithCause(
	"shipping_fee", errors.New("courier pickup requires the quoted shipping fee"))

// PricingInput is what the customer submitted plus the branch's price per kilogram.
type PricingInput struct {
	Items             []order.LineItem
	EstimatedWeight   int
	PricePerKg        int64
	PickupMethod      order.PickupMethod
	PickupShippingFee *int64
}

// PricingCalculator is a domain service that freezes the price estimate of a new order.
//
// Business rules:
//   - Itemized path when at least one line item is given: subtotal is the sum of line subtotals
//   - Weight path otherwise: subtotal is estimated weight times the branch price per kg (weight 0 allowed)
//   - Free pickup carries no fee, whatever the caller sent
//   - Courier pickup requires a non-negative fee quoted by the courier
//   - Total is subtotal plus pickup fee
//
// Example usage:
//
//	calc := NewPricingCalculator()
//	pricing, err := calc.Calculate(PricingInput{
//	    EstimatedWeight: 3,
//	    PricePerKg:      7000,
//	    PickupMethod:    order.PickupFree,
//	})
//	// pricing.TotalAmount() == 21000
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Calculate picks the pricing path and returns the pricing snapshot for the order.
//
// Returns:
//   - order.Pricing: the validated snapshot
//   - error: ErrMissingShippingFee for a courier pickup without fee, or validation errors
func (c PricingCalculator) Calculate(in PricingInput) (order.Pricing, error) {
	if err := in.PickupMethod.Validate(); err != nil {
		return order.Pricing{}, err
	}

	fee, err := c.pickupFee(in.PickupMethod, in.PickupShippingFee)
	if err != nil {
		return order.Pricing{}, err
	}

	if len(in.Items) > 0 {
		return order.NewPricing(order.PricingItemized, in.Items, in.EstimatedWeight, 0, order.SumSubtotals(in.Items), fee)
	}

	if in.EstimatedWeight < 0 {
		return order.Pricing{}, errs.NewValueIsOutOfRangeError("estimated_weight", in.EstimatedWeight, 0, "unbounded")
	}
	subtotal := int64(in.EstimatedWeight) * in.PricePerKg
	return order.NewPricing(order.PricingWeight, nil, in.EstimatedWeight, in.PricePerKg, subtotal, fee)
}

func (c PricingCalculator) pickupFee(method order.PickupMethod, fee *int64) (int64, error) {
	if method.IsFree() {
		return 0, nil
	}
	if fee == nil {
		return 0, ErrMissingShippingFee
	}
	if *fee < 0 {
		return 0, errs.NewValueIsOutOfRangeError("shipping_fee", *fee, 0, "unbounded")
	}
	return *fee, nil
}
