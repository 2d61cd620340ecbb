package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// State is the persisted form of an Order, used only to rehydrate it from storage.
type State struct {
	ID                  kernel.UUID
	Number              Number
	CustomerID          kernel.UUID
	BranchID            kernel.UUID
	PickupStaffID       *kernel.UUID
	DeliveryStaffID     *kernel.UUID
	Contact             Contact
	Pricing             Pricing
	DeliveryFee         int64
	DiscountAmount      int64
	DiscountCode        string
	PickupMethod        PickupMethod
	PickupCourier       *CourierSnapshot
	PickupScheduledTime string
	DeliveryMethod      DeliveryMethod
	DeliveryCourier     *CourierSnapshot
	Status              Status
	PaymentStatus       PaymentStatus
	PaymentMethod       PaymentMethod
	PaymentSession      *PaymentSession
	PaidAt              *time.Time
	Actual              *ActualWeighing
	Notes               string
	SpecialInstructions string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RestoreOrder rebuilds an order from storage. It checks types and the paid/paid_at
// pairing but not creation-time rules, so historical rows load unchanged.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		pickupStaffID:       s.PickupStaffID,
		deliveryStaffID:     s.DeliveryStaffID,
		deliveryFee:         s.DeliveryFee,
		discountAmount:      s.DiscountAmount,
		discountCode:        s.DiscountCode,
		pickupCourier:       s.PickupCourier,
		pickupScheduledTime: s.PickupScheduledTime,
		deliveryMethod:      s.DeliveryMethod,
		deliveryCourier:     s.DeliveryCourier,
		paymentMethod:       s.PaymentMethod,
		paymentSession:      s.PaymentSession,
		paidAt:              s.PaidAt,
		actual:              s.Actual,
		notes:               s.Notes,
		specialInstructions: s.SpecialInstructions,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
		guard:               guard.NewConstructorGuard(),
	}

	var paidErr error
	if s.PaymentStatus == PaymentPaid && s.PaidAt == nil {
		paidErr = errs.NewValueIsRequiredErrorWithCause("paid_at", errors.New("paid order without paid_at"))
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		o.setCustomer(s.CustomerID),
		o.setBranch(s.BranchID),
		o.setContact(s.Contact),
		o.setPricing(s.Pricing),
		o.restorePickupMethod(s.PickupMethod),
		o.restoreStatus(s.Status, s.PaymentStatus),
		paidErr,
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) restorePickupMethod(method PickupMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.pickupMethod = method
	return nil
}

func (o *Order) restoreStatus(status Status, paymentStatus PaymentStatus) error {
	if err := errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return err
	}
	o.status = status
	o.paymentStatus = paymentStatus
	return nil
}
