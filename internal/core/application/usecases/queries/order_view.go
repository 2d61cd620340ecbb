package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourierView is the stored courier snapshot of one leg. Company is empty
// when the leg has no courier.
type CourierView struct {
	Company               string `json:"courier_company"`
	Name                  string `json:"courier_name"`
	Code                  string `json:"courier_code"`
	ServiceName           string `json:"courier_service_name"`
	ServiceCode           string `json:"courier_service_code"`
	Currency              string `json:"currency"`
	Description           string `json:"courier_description"`
	Duration              string `json:"duration"`
	ShipmentDurationRange string `json:"shipment_duration_range"`
	ShipmentDurationUnit  string `json:"shipment_duration_unit"`
	ShippingType          string `json:"shipping_type"`
	Rate                  int64  `json:"courier_rate"`
	ShippingFee           int64  `json:"shipping_fee"`
	ShippingFeeDiscount   int64  `json:"shipping_fee_discount"`
	ShippingFeeSurcharge  int64  `json:"shipping_fee_surcharge"`
	ProviderOrderID       string `json:"biteship_order_id"`
	WaybillID             string `json:"biteship_waybill_id"`
	TrackingLink          string `json:"courier_tracking_link"`
}

// OrderView is the read model of an order as served to customers and branch owners.
type OrderView struct {
	ID            uuid.UUID  `json:"id"`
	OrderNumber   string     `json:"order_number"`
	CustomerID    uuid.UUID  `json:"customer_id"`
	BranchID      uuid.UUID  `json:"branch_id"`
	OrderStatus   string     `json:"order_status"`
	PaymentStatus string     `json:"payment_status"`
	PaymentMethod string     `json:"payment_method"`
	PaidAt        *time.Time `json:"paid_at"`

	PaymentSessionToken     string     `json:"snaptoken"`
	PaymentRedirectURL      string     `json:"payment_url"`
	PaymentSessionExpiresAt *time.Time `json:"payment_expires_at"`

	PricingPath       string         `json:"pricing_path"`
	ItemsDetail       datatypes.JSON `json:"items_detail"`
	EstimatedWeight   int            `json:"estimated_weight"`
	PricePerKg        int64          `json:"price_per_kg"`
	Subtotal          int64          `json:"subtotal"`
	PickupShippingFee int64          `json:"pickup_shipping_fee"`
	DeliveryFee       int64          `json:"delivery_fee"`
	DiscountAmount    int64          `json:"discount_amount"`
	DiscountCode      string         `json:"discount_code"`
	TotalAmount       int64          `json:"total_amount"`

	ActualWeight           decimal.NullDecimal `json:"actual_weight"`
	ActualWeightItems      datatypes.JSON      `json:"actual_weight_items"`
	ActualTotalAmount      *int64              `json:"actual_total_amount"`
	ProofVideoURL          string              `json:"proof_video_url"`
	ActualWeightRecordedAt *time.Time          `json:"actual_weight_recorded_at"`

	CustomerName      string  `json:"customer_name"`
	CustomerPhone     string  `json:"customer_phone"`
	CustomerAddress   string  `json:"customer_address"`
	CustomerLatitude  float64 `json:"customer_latitude"`
	CustomerLongitude float64 `json:"customer_longitude"`

	PickupMethod        string      `json:"pickup_method"`
	PickupScheduledTime string      `json:"pickup_scheduled_time"`
	PickupCourier       CourierView `json:"pickup" gorm:"embedded;embeddedPrefix:pickup_courier_"`
	DeliveryMethod      string      `json:"delivery_method"`
	DeliveryCourier     CourierView `json:"delivery" gorm:"embedded;embeddedPrefix:delivery_courier_"`

	PickupStaffID   *uuid.UUID `json:"pickup_staff_id"`
	DeliveryStaffID *uuid.UUID `json:"delivery_staff_id"`

	Notes               string    `json:"notes"`
	SpecialInstructions string    `json:"special_instructions"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (OrderView) TableName() string {
	return "orders"
}

func (v OrderView) IsPickupCourier() bool {
	return v.PickupCourier.Company != ""
}

func (v OrderView) IsDeliveryCourier() bool {
	return v.DeliveryCourier.Company != ""
}

// OrderViewReader loads the stored view of an order without an ownership
// check. Callers use it to present an order they were just allowed to change.
type OrderViewReader struct {
	db *gorm.DB
}

func NewOrderViewReader(db *gorm.DB) OrderViewReader {
	return OrderViewReader{db: db}
}

func (r OrderViewReader) ByID(ctx context.Context, id kernel.UUID) (OrderView, error) {
	return findOrder(ctx, r.db, id)
}

// latestOrders orders newest first, ties broken by id so pages are stable.
func latestOrders(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}
