package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPricing(t *testing.T) {
	shirt, err := order.NewLineItem(kernel.NewUUID(), "Kemeja", decimal.NewFromInt(2), order.UnitPcs, 5000, 10000)
	require.NoError(t, err)
	bedsheet, err := order.NewLineItem(kernel.NewUUID(), "Sprei", decimal.NewFromInt(1), order.UnitPcs, 15000, 15000)
	require.NoError(t, err)

	t.Run("itemized sums line subtotals", func(t *testing.T) {
		p, err := order.NewPricing(order.PricingItemized, []order.LineItem{shirt, bedsheet}, 0, 0, 25000, 12000)

		require.NoError(t, err)
		assert.Equal(t, order.PricingItemized, p.Path())
		assert.Len(t, p.Items(), 2)
		assert.Equal(t, int64(37000), p.TotalAmount())
	})

	t.Run("itemized requires items", func(t *testing.T) {
		_, err := order.NewPricing(order.PricingItemized, nil, 0, 0, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("itemized subtotal mismatch", func(t *testing.T) {
		_, err := order.NewPricing(order.PricingItemized, []order.LineItem{shirt}, 0, 0, 9000, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("weight zero is allowed", func(t *testing.T) {
		p, err := order.NewPricing(order.PricingWeight, nil, 0, 7000, 0, 0)

		require.NoError(t, err)
		assert.Zero(t, p.TotalAmount())
	})

	t.Run("negative fee", func(t *testing.T) {
		_, err := order.NewPricing(order.PricingWeight, nil, 1, 7000, 7000, -1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("items are copied", func(t *testing.T) {
		items := []order.LineItem{shirt}
		p, err := order.NewPricing(order.PricingItemized, items, 0, 0, 10000, 0)
		require.NoError(t, err)

		items[0] = bedsheet
		assert.Equal(t, "Kemeja", p.Items()[0].Name())
	})
}

func TestNewLineItem(t *testing.T) {
	t.Run("fractional kilograms", func(t *testing.T) {
		item, err := order.NewLineItem(kernel.NewUUID(), "Cuci Setrika", decimal.RequireFromString("2.5"), order.UnitKg, 8000, 20000)

		require.NoError(t, err)
		assert.Equal(t, "2.5", item.Quantity().String())
		assert.Equal(t, order.UnitKg, item.Unit())
	})

	t.Run("quantity below 0.1", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.NewUUID(), "Cuci", decimal.RequireFromString("0.05"), order.UnitKg, 8000, 400)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		_, err := order.NewLineItem(kernel.UUID{}, "", decimal.Zero, order.UnitUnknown, -1, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "item_name")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "unit")
		assert.Contains(t, err.Error(), "price_per_unit")
	})
}

func TestNumber(t *testing.T) {
	n, err := order.GenerateNumber(time.Date(2025, 1, 7, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-20250107-[A-Z0-9]{6}$`, n.String())

	parsed, err := order.ParseNumber(n.String())
	require.NoError(t, err)
	assert.Equal(t, n, parsed)

	_, err = order.ParseNumber("ORD-2025-abc")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero order.Number
	require.ErrorIs(t, zero.Validate(), errs.ErrValueIsRequired)
}

func TestNewCourierSnapshot(t *testing.T) {
	_, err := order.NewCourierSnapshot(order.CourierQuote{Company: "grab", ShippingFee: -5})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "courier_name")
	assert.Contains(t, err.Error(), "shipping_fee")

	var zero order.CourierSnapshot
	require.ErrorIs(t, zero.Validate(), order.ErrCourierSnapshotIsNotConstructed)
}
