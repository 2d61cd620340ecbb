package services_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fee(v int64) *int64 {
	return &v
}

func TestPricingCalculator_Calculate(t *testing.T) {
	calc := services.NewPricingCalculator()

	shirt, err := order.NewLineItem(kernel.NewUUID(), "Kemeja", decimal.NewFromInt(3), order.UnitPcs, 5000, 15000)
	require.NoError(t, err)
	blanket, err := order.NewLineItem(kernel.NewUUID(), "Selimut", decimal.NewFromInt(1), order.UnitPcs, 20000, 20000)
	require.NoError(t, err)

	t.Run("itemized with courier pickup", func(t *testing.T) {
		p, err := calc.Calculate(services.PricingInput{
			Items:             []order.LineItem{shirt, blanket},
			PricePerKg:        7000,
			PickupMethod:      order.PickupGojek,
			PickupShippingFee: fee(12000),
		})

		require.NoError(t, err)
		assert.Equal(t, order.PricingItemized, p.Path())
		assert.Equal(t, int64(35000), p.Subtotal())
		assert.Equal(t, int64(12000), p.PickupShippingFee())
		assert.Equal(t, int64(47000), p.TotalAmount())
		assert.Zero(t, p.PricePerKg())
	})

	t.Run("weight with free pickup ignores a sent fee", func(t *testing.T) {
		p, err := calc.Calculate(services.PricingInput{
			EstimatedWeight:   3,
			PricePerKg:        7000,
			PickupMethod:      order.PickupFree,
			PickupShippingFee: fee(9000),
		})

		require.NoError(t, err)
		assert.Equal(t, order.PricingWeight, p.Path())
		assert.Equal(t, int64(21000), p.Subtotal())
		assert.Zero(t, p.PickupShippingFee())
		assert.Equal(t, int64(21000), p.TotalAmount())
	})

	t.Run("weight zero", func(t *testing.T) {
		p, err := calc.Calculate(services.PricingInput{PricePerKg: 7000, PickupMethod: order.PickupFree})

		require.NoError(t, err)
		assert.Zero(t, p.TotalAmount())
	})

	t.Run("courier pickup without fee", func(t *testing.T) {
		_, err := calc.Calculate(services.PricingInput{EstimatedWeight: 2, PricePerKg: 7000, PickupMethod: order.PickupGrab})

		require.ErrorIs(t, err, services.ErrMissingShippingFee)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("negative fee", func(t *testing.T) {
		_, err := calc.Calculate(services.PricingInput{PickupMethod: order.PickupGrab, PickupShippingFee: fee(-1)})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative weight", func(t *testing.T) {
		_, err := calc.Calculate(services.PricingInput{EstimatedWeight: -1, PricePerKg: 7000, PickupMethod: order.PickupFree})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("unknown pickup method", func(t *testing.T) {
		_, err := calc.Calculate(services.PricingInput{EstimatedWeight: 1, PricePerKg: 7000})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
