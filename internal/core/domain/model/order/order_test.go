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

var testNow = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func testContact(t *testing.T) order.Contact {
	t.Helper()
	loc, err := kernel.NewLocation(-6.2, 106.8)
	require.NoError(t, err)
	c, err := order.NewContact("Sari", "081234567890", "Jl. Melati 5", loc)
	require.NoError(t, err)
	return c
}

func testSnapshot(t *testing.T, company string, fee int64) *order.CourierSnapshot {
	t.Helper()
	s, err := order.NewCourierSnapshot(order.CourierQuote{
		Company:     company,
		CourierName: company,
		CourierCode: company,
		ServiceName: "Instant",
		ServiceCode: "instant",
		Rate:        fee,
		ShippingFee: fee,
	})
	require.NoError(t, err)
	return &s
}

func testDraft(t *testing.T, pickup order.PickupMethod, fee int64, courier *order.CourierSnapshot) order.Draft {
	t.Helper()
	pricing, err := order.NewPricing(order.PricingWeight, nil, 3, 7000, 21000, fee)
	require.NoError(t, err)
	number, err := order.GenerateNumber(testNow)
	require.NoError(t, err)

	return order.Draft{
		ID:            kernel.NewUUID(),
		Number:        number,
		CustomerID:    kernel.NewUUID(),
		BranchID:      kernel.NewUUID(),
		Contact:       testContact(t),
		Pricing:       pricing,
		PickupMethod:  pickup,
		PickupCourier: courier,
		CreatedAt:     testNow,
	}
}

func readyOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(testDraft(t, order.PickupFree, 0, nil))
	require.NoError(t, err)
	require.NoError(t, o.UpdateStatus(order.StatusReady, "", testNow))
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("weight order with free pickup", func(t *testing.T) {
		o, err := order.NewOrder(testDraft(t, order.PickupFree, 0, nil))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus())
		assert.Equal(t, order.PaymentMethodNone, o.PaymentMethod())
		assert.Equal(t, int64(21000), o.Subtotal())
		assert.Equal(t, int64(21000), o.TotalAmount())
		assert.True(t, o.IsPickupFree())
		assert.False(t, o.IsPickupCourier())
		assert.Nil(t, o.PickupCourier())
		assert.Nil(t, o.PaidAt())
	})

	t.Run("gojek pickup keeps the courier snapshot and fee", func(t *testing.T) {
		o, err := order.NewOrder(testDraft(t, order.PickupGojek, 15000, testSnapshot(t, "gojek", 15000)))

		require.NoError(t, err)
		assert.Equal(t, int64(36000), o.TotalAmount())
		assert.True(t, o.IsPickupCourier())
		require.NotNil(t, o.PickupCourier())
		assert.Equal(t, "gojek", o.PickupCourier().Company())
		assert.Equal(t, order.DefaultCurrency, o.PickupCourier().Quote().Currency)
	})

	t.Run("courier pickup without snapshot", func(t *testing.T) {
		o, err := order.NewOrder(testDraft(t, order.PickupGrab, 12000, nil))

		require.ErrorIs(t, err, order.ErrMissingCourierSnapshot)
		assert.True(t, errs.IsValidation(err))
		assert.Nil(t, o)
	})

	t.Run("snapshot from another courier", func(t *testing.T) {
		_, err := order.NewOrder(testDraft(t, order.PickupGrab, 12000, testSnapshot(t, "gojek", 12000)))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "pickup_courier")
	})

	t.Run("free pickup with a fee", func(t *testing.T) {
		_, err := order.NewOrder(testDraft(t, order.PickupFree, 5000, nil))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "pickup_shipping_fee")
	})

	t.Run("collects every invalid field", func(t *testing.T) {
		d := testDraft(t, order.PickupFree, 0, nil)
		d.ID = kernel.UUID{}
		d.CustomerID = kernel.UUID{}
		d.Contact = order.Contact{}

		_, err := order.NewOrder(d)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer_id")
		assert.Contains(t, err.Error(), "Contact must be created")
	})
}

func TestOrder_Authorize(t *testing.T) {
	o, err := order.NewOrder(testDraft(t, order.PickupFree, 0, nil))
	require.NoError(t, err)

	require.NoError(t, o.AuthorizeCustomer(o.CustomerID()))
	require.ErrorIs(t, o.AuthorizeCustomer(kernel.NewUUID()), errs.ErrForbidden)

	require.NoError(t, o.AuthorizeBranch(o.BranchID()))
	require.ErrorIs(t, o.AuthorizeBranch(kernel.NewUUID()), errs.ErrForbidden)
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("notes replace only when given", func(t *testing.T) {
		o, err := order.NewOrder(testDraft(t, order.PickupFree, 0, nil))
		require.NoError(t, err)

		require.NoError(t, o.UpdateStatus(order.StatusProcessing, "sorted", testNow.Add(time.Minute)))
		assert.Equal(t, "sorted", o.Notes())

		require.NoError(t, o.UpdateStatus(order.StatusWashing, "", testNow.Add(2*time.Minute)))
		assert.Equal(t, "sorted", o.Notes())
		assert.Equal(t, order.StatusWashing, o.Status())
		assert.Equal(t, testNow.Add(2*time.Minute), o.UpdatedAt())
	})

	t.Run("staff may step back", func(t *testing.T) {
		o := readyOrder(t)
		require.NoError(t, o.UpdateStatus(order.StatusWashing, "", testNow))
		assert.Equal(t, order.StatusWashing, o.Status())
	})

	t.Run("completed order is closed", func(t *testing.T) {
		o := readyOrder(t)
		require.NoError(t, o.UpdateStatus(order.StatusCompleted, "", testNow))

		err := o.UpdateStatus(order.StatusProcessing, "", testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("notes longer than 500 characters", func(t *testing.T) {
		o := readyOrder(t)
		long := make([]rune, 501)
		for i := range long {
			long[i] = 'a'
		}

		err := o.UpdateStatus(order.StatusDelivering, string(long), testNow)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, order.StatusReady, o.Status())
	})
}

func TestOrder_ChooseDeliveryAndPayment(t *testing.T) {
	t.Run("self pickup with cash completes and pays", func(t *testing.T) {
		o := readyOrder(t)

		err := o.ChooseDeliveryAndPayment(order.DeliverySelfPickup, order.PaymentChoiceCash, nil, testNow)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.Equal(t, order.PaymentMethodCash, o.PaymentMethod())
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, testNow, *o.PaidAt())
		assert.True(t, o.IsSelfPickup())
	})

	t.Run("free delivery with cash goes out for delivery", func(t *testing.T) {
		o := readyOrder(t)

		require.NoError(t, o.ChooseDeliveryAndPayment(order.DeliveryFree, order.PaymentChoiceCash, nil, testNow))

		assert.Equal(t, order.StatusDelivering, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.True(t, o.IsDeliveryFree())
	})

	t.Run("online leaves status and marks payment pending", func(t *testing.T) {
		o := readyOrder(t)

		require.NoError(t, o.ChooseDeliveryAndPayment(order.DeliveryGrab, order.PaymentChoiceOnline, testSnapshot(t, "grab", 9000), testNow))

		assert.Equal(t, order.StatusReady, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, order.PaymentMethodMidtrans, o.PaymentMethod())
		assert.Nil(t, o.PaidAt())
		assert.Equal(t, int64(9000), o.DeliveryFee())
		assert.Equal(t, int64(30000), o.AmountDue())
		require.NotNil(t, o.DeliveryCourier())
		assert.True(t, o.IsDeliveryCourier())
	})

	t.Run("courier delivery without a quote keeps a zero fee", func(t *testing.T) {
		o := readyOrder(t)

		require.NoError(t, o.ChooseDeliveryAndPayment(order.DeliveryGojek, order.PaymentChoiceOnline, nil, testNow))

		assert.Nil(t, o.DeliveryCourier())
		assert.Zero(t, o.DeliveryFee())
	})

	t.Run("only from ready", func(t *testing.T) {
		for _, status := range order.Statuses() {
			if status == order.StatusReady {
				continue
			}
			t.Run(status.String(), func(t *testing.T) {
				o, err := order.RestoreOrder(order.State{
					ID:            kernel.NewUUID(),
					Number:        mustNumber(t),
					CustomerID:    kernel.NewUUID(),
					BranchID:      kernel.NewUUID(),
					Contact:       testContact(t),
					Pricing:       mustPricing(t, 10000, 0),
					PickupMethod:  order.PickupFree,
					Status:        status,
					PaymentStatus: order.PaymentUnpaid,
				})
				require.NoError(t, err)

				err = o.ChooseDeliveryAndPayment(order.DeliverySelfPickup, order.PaymentChoiceCash, nil, testNow)

				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, status, o.Status())
				assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus())
				assert.Equal(t, order.DeliveryNone, o.DeliveryMethod())
			})
		}
	})

	t.Run("only once", func(t *testing.T) {
		o := readyOrder(t)
		require.NoError(t, o.ChooseDeliveryAndPayment(order.DeliveryFree, order.PaymentChoiceOnline, nil, testNow))

		err := o.ChooseDeliveryAndPayment(order.DeliverySelfPickup, order.PaymentChoiceCash, nil, testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.DeliveryFree, o.DeliveryMethod())
	})

	t.Run("delivery method is required", func(t *testing.T) {
		o := readyOrder(t)

		err := o.ChooseDeliveryAndPayment(order.DeliveryNone, order.PaymentChoiceCash, nil, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_RecordActualWeight(t *testing.T) {
	item, err := order.NewLineItem(kernel.NewUUID(), "Cuci Kering", decimal.RequireFromString("3.5"), order.UnitKg, 7000, 24500)
	require.NoError(t, err)

	t.Run("keeps the estimate and adds the delivery fee", func(t *testing.T) {
		o := readyOrder(t)
		require.NoError(t, o.ChooseDeliveryAndPayment(order.DeliveryGojek, order.PaymentChoiceOnline, testSnapshot(t, "gojek", 8000), testNow))
		weight := decimal.RequireFromString("3.5")

		err := o.RecordActualWeight([]order.LineItem{item}, &weight, "https://cdn.example/proof.mp4", "", testNow)

		require.NoError(t, err)
		require.NotNil(t, o.Actual())
		assert.Equal(t, int64(32500), o.Actual().TotalAmount)
		assert.True(t, weight.Equal(*o.Actual().Weight))
		assert.Equal(t, int64(21000), o.TotalAmount())
		assert.Equal(t, int64(21000), o.Subtotal())
	})

	t.Run("regardless of status", func(t *testing.T) {
		o, err := order.NewOrder(testDraft(t, order.PickupFree, 0, nil))
		require.NoError(t, err)

		require.NoError(t, o.RecordActualWeight([]order.LineItem{item}, nil, "", "weighed", testNow))
		assert.Equal(t, "weighed", o.Notes())
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("requires items", func(t *testing.T) {
		o := readyOrder(t)

		err := o.RecordActualWeight(nil, nil, "", "", testNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o.Actual())
	})
}

func TestOrder_PaymentSession(t *testing.T) {
	t.Run("not payable before ready", func(t *testing.T) {
		o, err := order.NewOrder(testDraft(t, order.PickupFree, 0, nil))
		require.NoError(t, err)

		require.ErrorIs(t, o.CheckPayable(), errs.ErrInvalidTransition)
	})

	t.Run("paid order is not payable", func(t *testing.T) {
		o := readyOrder(t)
		require.NoError(t, o.ChooseDeliveryAndPayment(order.DeliveryFree, order.PaymentChoiceCash, nil, testNow))

		require.ErrorIs(t, o.CheckPayable(), errs.ErrInvalidTransition)
	})

	t.Run("attached session is reused until it expires", func(t *testing.T) {
		o := readyOrder(t)
		session := order.PaymentSession{Token: "snap-token", RedirectURL: "https://pay", ExpiresAt: testNow.Add(time.Hour)}

		require.NoError(t, o.AttachPaymentSession(session, testNow))

		got, ok := o.ActivePaymentSession(testNow.Add(30 * time.Minute))
		assert.True(t, ok)
		assert.Equal(t, session, got)
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())

		_, ok = o.ActivePaymentSession(testNow.Add(2 * time.Hour))
		assert.False(t, ok)
	})

	t.Run("failed payment does not reuse the session", func(t *testing.T) {
		o := readyOrder(t)
		require.NoError(t, o.AttachPaymentSession(order.PaymentSession{Token: "t", ExpiresAt: testNow.Add(time.Hour)}, testNow))
		require.True(t, o.ApplyPaymentNotification("expire", "", testNow))

		_, ok := o.ActivePaymentSession(testNow)
		assert.False(t, ok)
	})
}

func TestOrder_ApplyPaymentNotification(t *testing.T) {
	pending := func(t *testing.T) *order.Order {
		o := readyOrder(t)
		require.NoError(t, o.ChooseDeliveryAndPayment(order.DeliveryFree, order.PaymentChoiceOnline, nil, testNow))
		return o
	}

	t.Run("settlement pays once", func(t *testing.T) {
		o := pending(t)
		paidAt := testNow.Add(time.Minute)

		assert.True(t, o.ApplyPaymentNotification("settlement", "", paidAt))
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, paidAt, *o.PaidAt())

		assert.False(t, o.ApplyPaymentNotification("settlement", "", paidAt.Add(time.Hour)))
		assert.False(t, o.ApplyPaymentNotification("capture", "accept", paidAt.Add(time.Hour)))
		assert.Equal(t, paidAt, *o.PaidAt())
	})

	t.Run("late pending or failure does not regress a paid order", func(t *testing.T) {
		o := pending(t)
		require.True(t, o.ApplyPaymentNotification("capture", "accept", testNow))

		assert.False(t, o.ApplyPaymentNotification("pending", "", testNow))
		assert.False(t, o.ApplyPaymentNotification("expire", "", testNow))
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})

	t.Run("refund only after payment", func(t *testing.T) {
		o := pending(t)
		assert.False(t, o.ApplyPaymentNotification("refund", "", testNow))
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())

		require.True(t, o.ApplyPaymentNotification("settlement", "", testNow))
		assert.True(t, o.ApplyPaymentNotification("partial_refund", "", testNow))
		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
		assert.NotNil(t, o.PaidAt())

		assert.False(t, o.ApplyPaymentNotification("settlement", "", testNow))
	})

	t.Run("refund on a completed order", func(t *testing.T) {
		o := pending(t)
		require.True(t, o.ApplyPaymentNotification("settlement", "", testNow))
		require.NoError(t, o.UpdateStatus(order.StatusCompleted, "", testNow))

		assert.True(t, o.ApplyPaymentNotification("refund", "", testNow))
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("challenge stays pending and deny is undecided", func(t *testing.T) {
		o := pending(t)

		assert.False(t, o.ApplyPaymentNotification("capture", "challenge", testNow))
		assert.False(t, o.ApplyPaymentNotification("capture", "deny", testNow))
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})

	t.Run("deny on an unpaid order fails it", func(t *testing.T) {
		o := readyOrder(t)
		require.Equal(t, order.PaymentUnpaid, o.PaymentStatus())

		assert.True(t, o.ApplyPaymentNotification("deny", "", testNow))
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
		assert.Nil(t, o.PaidAt())
	})

	t.Run("failure then retry then payment", func(t *testing.T) {
		o := pending(t)

		assert.True(t, o.ApplyPaymentNotification("deny", "", testNow))
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
		assert.True(t, o.ApplyPaymentNotification("settlement", "", testNow))
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})
}

func TestOrder_AmountDue(t *testing.T) {
	o, err := order.RestoreOrder(order.State{
		ID:             kernel.NewUUID(),
		Number:         mustNumber(t),
		CustomerID:     kernel.NewUUID(),
		BranchID:       kernel.NewUUID(),
		Contact:        testContact(t),
		Pricing:        mustPricing(t, 10000, 0),
		DeliveryFee:    2000,
		DiscountAmount: 50000,
		PickupMethod:   order.PickupFree,
		Status:         order.StatusReady,
		PaymentStatus:  order.PaymentUnpaid,
	})
	require.NoError(t, err)

	assert.Zero(t, o.AmountDue())
}

func TestRestoreOrder(t *testing.T) {
	base := func(t *testing.T) order.State {
		return order.State{
			ID:            kernel.NewUUID(),
			Number:        mustNumber(t),
			CustomerID:    kernel.NewUUID(),
			BranchID:      kernel.NewUUID(),
			Contact:       testContact(t),
			Pricing:       mustPricing(t, 21000, 15000),
			PickupMethod:  order.PickupGojek,
			Status:        order.StatusDelivering,
			PaymentStatus: order.PaymentPending,
		}
	}

	t.Run("restores a historical courier order without snapshot", func(t *testing.T) {
		o, err := order.RestoreOrder(base(t))

		require.NoError(t, err)
		assert.Equal(t, order.StatusDelivering, o.Status())
		assert.Equal(t, int64(36000), o.TotalAmount())
	})

	t.Run("paid without paid_at", func(t *testing.T) {
		s := base(t)
		s.PaymentStatus = order.PaymentPaid

		_, err := order.RestoreOrder(s)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "paid_at")
	})

	t.Run("unknown status", func(t *testing.T) {
		s := base(t)
		s.Status = order.StatusUnknown

		_, err := order.RestoreOrder(s)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero order fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func mustNumber(t *testing.T) order.Number {
	t.Helper()
	n, err := order.GenerateNumber(testNow)
	require.NoError(t, err)
	return n
}

func mustPricing(t *testing.T, subtotal, fee int64) order.Pricing {
	t.Helper()
	p, err := order.NewPricing(order.PricingWeight, nil, int(subtotal/1000), 1000, subtotal, fee)
	require.NoError(t, err)
	return p
}
