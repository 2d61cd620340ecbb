package order

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const maxStatusNotesLen = 500

var (
	// ErrOrderIsNotConstructed is returned for an Order not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrMissingCourierSnapshot is returned when a gojek or grab pickup arrives without a courier quote.
	ErrMissingCourierSnapshot = errs.NewValueIsRequiredErrorWithCause(
		"pickup_courier", errors.New("courier pickup requires the accepted courier quote"))
)

// Draft holds everything needed to open a new order.
type Draft struct {
	ID                  kernel.UUID
	Number              Number
	CustomerID          kernel.UUID
	BranchID            kernel.UUID
	Contact             Contact
	Pricing             Pricing
	PickupMethod        PickupMethod
	PickupCourier       *CourierSnapshot
	PickupScheduledTime string
	Notes               string
	SpecialInstructions string
	CreatedAt           time.Time
}

// ActualWeighing is the branch's measurement once the laundry is on the scale.
type ActualWeighing struct {
	Items         []LineItem
	Weight        *decimal.Decimal
	TotalAmount   int64
	ProofVideoURL string
	RecordedAt    time.Time
}

// Order is the aggregate root of the laundry lifecycle.
//
// Invariants:
//   - TotalAmount equals Subtotal + PickupShippingFee and never changes after creation
//   - a paid order always carries PaidAt
//   - the delivery method is chosen once, from ready
//   - completed and cancelled accept no further status changes
type Order struct {
	id                  kernel.UUID
	number              Number
	customerID          kernel.UUID
	branchID            kernel.UUID
	pickupStaffID       *kernel.UUID
	deliveryStaffID     *kernel.UUID
	contact             Contact
	pricing             Pricing
	deliveryFee         int64
	discountAmount      int64
	discountCode        string
	pickupMethod        PickupMethod
	pickupCourier       *CourierSnapshot
	pickupScheduledTime string
	deliveryMethod      DeliveryMethod
	deliveryCourier     *CourierSnapshot
	status              Status
	paymentStatus       PaymentStatus
	paymentMethod       PaymentMethod
	paymentSession      *PaymentSession
	paidAt              *time.Time
	actual              *ActualWeighing
	notes               string
	specialInstructions string
	createdAt           time.Time
	updatedAt           time.Time

	guard guard.ConstructorGuard
}

// NewOrder opens an order in pending/unpaid.
// Courier pickups require a courier snapshot quoted by the same courier;
// free pickups carry no snapshot and no pickup fee.
func NewOrder(d Draft) (*Order, error) {
	o := &Order{
		status:              StatusPending,
		paymentStatus:       PaymentUnpaid,
		paymentMethod:       PaymentMethodNone,
		pickupScheduledTime: d.PickupScheduledTime,
		notes:               d.Notes,
		specialInstructions: d.SpecialInstructions,
		createdAt:           d.CreatedAt,
		updatedAt:           d.CreatedAt,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(d.ID),
		o.setNumber(d.Number),
		o.setCustomer(d.CustomerID),
		o.setBranch(d.BranchID),
		o.setContact(d.Contact),
		o.setPricing(d.Pricing),
		o.setPickup(d.PickupMethod, d.PickupCourier),
	); err != nil {
		return nil, err
	}

	if o.pickupMethod.IsFree() && o.pricing.PickupShippingFee() != 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"pickup_shipping_fee", fmt.Errorf("free pickup cannot carry a fee of %d", o.pricing.PickupShippingFee()))
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) BranchID() kernel.UUID {
	return o.branchID
}

func (o *Order) PickupStaffID() *kernel.UUID {
	return o.pickupStaffID
}

func (o *Order) DeliveryStaffID() *kernel.UUID {
	return o.deliveryStaffID
}

func (o *Order) Contact() Contact {
	return o.contact
}

func (o *Order) Pricing() Pricing {
	return o.pricing
}

func (o *Order) Subtotal() int64 {
	return o.pricing.Subtotal()
}

func (o *Order) TotalAmount() int64 {
	return o.pricing.TotalAmount()
}

func (o *Order) DeliveryFee() int64 {
	return o.deliveryFee
}

func (o *Order) DiscountAmount() int64 {
	return o.discountAmount
}

func (o *Order) DiscountCode() string {
	return o.discountCode
}

// AmountDue is what the customer settles: the estimate total plus the delivery fee, less any discount.
func (o *Order) AmountDue() int64 {
	due := o.pricing.TotalAmount() + o.deliveryFee - o.discountAmount
	if due < 0 {
		return 0
	}
	return due
}

func (o *Order) PickupMethod() PickupMethod {
	return o.pickupMethod
}

func (o *Order) PickupCourier() *CourierSnapshot {
	return o.pickupCourier
}

func (o *Order) PickupScheduledTime() string {
	return o.pickupScheduledTime
}

func (o *Order) IsPickupFree() bool {
	return o.pickupMethod.IsFree()
}

func (o *Order) IsPickupCourier() bool {
	return o.pickupMethod.IsCourier()
}

func (o *Order) DeliveryMethod() DeliveryMethod {
	return o.deliveryMethod
}

func (o *Order) DeliveryCourier() *CourierSnapshot {
	return o.deliveryCourier
}

func (o *Order) IsDeliveryFree() bool {
	return o.deliveryMethod.IsFree()
}

func (o *Order) IsDeliveryCourier() bool {
	return o.deliveryMethod.IsCourier()
}

func (o *Order) IsSelfPickup() bool {
	return o.deliveryMethod.IsSelfPickup()
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentSession returns the stored hosted checkout, nil when none was created.
func (o *Order) PaymentSession() *PaymentSession {
	return o.paymentSession
}

func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// Actual returns the recorded weighing, nil until the branch records one.
func (o *Order) Actual() *ActualWeighing {
	return o.actual
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AuthorizeCustomer fails with ForbiddenError unless actor placed the order.
func (o *Order) AuthorizeCustomer(actor kernel.UUID) error {
	if !o.customerID.IsEqual(actor) {
		return errs.NewForbiddenError(actor, "order "+o.number.String())
	}
	return nil
}

// AuthorizeBranch fails with ForbiddenError unless the order belongs to branchID.
func (o *Order) AuthorizeBranch(branchID kernel.UUID) error {
	if !o.branchID.IsEqual(branchID) {
		return errs.NewForbiddenError("branch "+branchID.String(), "order "+o.number.String())
	}
	return nil
}

// UpdateStatus applies a staff status change. Non-empty notes replace the order notes.
func (o *Order) UpdateStatus(target Status, notes string, now time.Time) error {
	if n := utf8.RuneCountInString(notes); n > maxStatusNotesLen {
		return errs.NewValueIsOutOfRangeError("notes", n, 0, maxStatusNotesLen)
	}

	next, err := o.status.Transition(ActionStaffUpdate, target)
	if err != nil {
		return err
	}

	o.status = next
	if notes != "" {
		o.notes = notes
	}
	o.updatedAt = now
	return nil
}

// ChooseDeliveryAndPayment records the customer's one-time choice on a ready order.
//
// Cash settles immediately: the order becomes paid and moves to completed for
// self pickup or delivering otherwise. Online leaves the status at ready with the
// payment pending at the gateway. A courier snapshot is kept only for courier delivery
// and its shipping fee becomes the delivery fee.
func (o *Order) ChooseDeliveryAndPayment(
	method DeliveryMethod,
	choice PaymentChoice,
	courier *CourierSnapshot,
	now time.Time,
) error {
	if o.status != StatusReady {
		return errs.NewInvalidTransitionError(o.status.String(), "", "delivery can only be chosen for a ready order")
	}
	if o.deliveryMethod != DeliveryNone {
		return errs.NewInvalidTransitionError(o.status.String(), "", "delivery method was already chosen")
	}
	if method == DeliveryNone || method > DeliveryGrab {
		return errs.NewValueIsRequiredError("delivery_method")
	}
	if choice != PaymentChoiceCash && choice != PaymentChoiceOnline {
		return errs.NewValueIsInvalidErrorWithCause("payment_method", fmt.Errorf("%d is not a valid payment choice", choice))
	}

	var deliveryCourier *CourierSnapshot
	deliveryFee := o.deliveryFee
	if method.IsCourier() && courier != nil {
		if err := courier.Validate(); err != nil {
			return err
		}
		if !courier.matches(method.String()) {
			return errs.NewValueIsInvalidErrorWithCause(
				"delivery_courier", fmt.Errorf("quote from %s does not match %s", courier.Company(), method))
		}
		c := *courier
		deliveryCourier = &c
		deliveryFee = courier.ShippingFee()
	}

	if choice == PaymentChoiceCash {
		target := StatusDelivering
		if method.IsSelfPickup() {
			target = StatusCompleted
		}
		next, err := o.status.Transition(ActionSettleCash, target)
		if err != nil {
			return err
		}
		paidAt := now
		o.status = next
		o.paymentMethod = PaymentMethodCash
		o.paymentStatus = PaymentPaid
		o.paidAt = &paidAt
	} else {
		o.paymentMethod = PaymentMethodMidtrans
		o.paymentStatus = PaymentPending
	}

	o.deliveryMethod = method
	o.deliveryCourier = deliveryCourier
	o.deliveryFee = deliveryFee
	o.updatedAt = now
	return nil
}

// RecordActualWeight stores the weighing and derives the actual total from the
// actual lines plus the delivery fee. The estimate is left untouched and the
// order status does not matter. Non-empty notes replace the order notes.
func (o *Order) RecordActualWeight(
	items []LineItem,
	weight *decimal.Decimal,
	proofVideoURL string,
	notes string,
	now time.Time,
) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("actual_weight_items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	if weight != nil && weight.IsNegative() {
		return errs.NewValueIsOutOfRangeError("actual_weight", weight.String(), 0, "unbounded")
	}

	o.actual = &ActualWeighing{
		Items:         append([]LineItem(nil), items...),
		Weight:        weight,
		TotalAmount:   SumSubtotals(items) + o.deliveryFee,
		ProofVideoURL: proofVideoURL,
		RecordedAt:    now,
	}
	if notes != "" {
		o.notes = notes
	}
	o.updatedAt = now
	return nil
}

// CheckPayable fails unless the order may start an online payment:
// the status is ready, delivering or completed and the order is not yet paid.
func (o *Order) CheckPayable() error {
	switch o.status {
	case StatusReady, StatusDelivering, StatusCompleted:
	default:
		return errs.NewInvalidTransitionError(o.status.String(), "", "order is not ready for payment")
	}
	if o.paymentStatus == PaymentPaid {
		return errs.NewInvalidTransitionError(o.paymentStatus.String(), "", "order is already paid")
	}
	return nil
}

// ActivePaymentSession returns the stored session while it is still pending and unexpired.
func (o *Order) ActivePaymentSession(now time.Time) (PaymentSession, bool) {
	if o.paymentSession == nil || o.paymentStatus != PaymentPending {
		return PaymentSession{}, false
	}
	if !o.paymentSession.IsActive(now) {
		return PaymentSession{}, false
	}
	return *o.paymentSession, true
}

// AttachPaymentSession stores a hosted checkout and marks the payment pending at the gateway.
func (o *Order) AttachPaymentSession(session PaymentSession, now time.Time) error {
	if err := o.CheckPayable(); err != nil {
		return err
	}
	if session.Token == "" {
		return errs.NewValueIsRequiredError("payment_session_token")
	}

	s := session
	o.paymentSession = &s
	o.paymentMethod = PaymentMethodMidtrans
	o.paymentStatus = PaymentPending
	o.updatedAt = now
	return nil
}

// ApplyPaymentNotification folds a gateway notification into the payment status.
// It returns false when the notification changes nothing: an undecided
// combination, a repeated status, or anything but a refund once the order is paid.
func (o *Order) ApplyPaymentNotification(transactionStatus, fraudStatus string, now time.Time) bool {
	target, ok := ResolvePaymentStatus(transactionStatus, fraudStatus)
	if !ok || target == o.paymentStatus {
		return false
	}

	switch o.paymentStatus {
	case PaymentPaid:
		if target != PaymentRefunded {
			return false
		}
	case PaymentRefunded:
		return false
	default:
		if target == PaymentRefunded {
			return false
		}
	}

	o.paymentStatus = target
	if target == PaymentPaid {
		paidAt := now
		o.paidAt = &paidAt
	}
	if o.paymentMethod == PaymentMethodNone {
		o.paymentMethod = PaymentMethodMidtrans
	}
	o.updatedAt = now
	return true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setBranch(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("branch_id", err)
	}
	o.branchID = branchID
	return nil
}

func (o *Order) setContact(contact Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	o.contact = contact
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}

func (o *Order) setPickup(method PickupMethod, courier *CourierSnapshot) error {
	if err := method.Validate(); err != nil {
		return err
	}

	if !method.IsCourier() {
		o.pickupMethod = method
		o.pickupCourier = nil
		return nil
	}

	if courier == nil {
		return ErrMissingCourierSnapshot
	}
	if err := courier.Validate(); err != nil {
		return err
	}
	if !courier.matches(method.String()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickup_courier", fmt.Errorf("quote from %s does not match %s", courier.Company(), method))
	}

	c := *courier
	o.pickupMethod = method
	o.pickupCourier = &c
	return nil
}
