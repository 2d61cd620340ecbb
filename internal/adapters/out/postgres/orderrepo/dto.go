package orderrepo

import (
	"encoding/json"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber     string     `gorm:"size:32;uniqueIndex;not null"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index;not null"`
	BranchID        uuid.UUID  `gorm:"type:uuid;index;not null"`
	PickupStaffID   *uuid.UUID `gorm:"type:uuid"`
	DeliveryStaffID *uuid.UUID `gorm:"type:uuid"`

	CustomerName      string  `gorm:"size:100"`
	CustomerPhone     string  `gorm:"size:20;not null"`
	CustomerAddress   string  `gorm:"type:text;not null"`
	CustomerLatitude  float64 `gorm:"type:numeric(10,8)"`
	CustomerLongitude float64 `gorm:"type:numeric(11,8)"`

	PricingPath       string         `gorm:"size:16;not null"`
	ItemsDetail       datatypes.JSON `gorm:"type:jsonb"`
	EstimatedWeight   int
	PricePerKg        int64
	Subtotal          int64
	PickupShippingFee int64
	DeliveryFee       int64
	DiscountAmount    int64
	DiscountCode      string `gorm:"size:64"`
	TotalAmount       int64

	PickupMethod        string             `gorm:"size:16;not null"`
	PickupCourier       CourierSnapshotDTO `gorm:"embedded;embeddedPrefix:pickup_courier_"`
	PickupScheduledTime string             `gorm:"size:64"`
	DeliveryMethod      string             `gorm:"size:16"`
	DeliveryCourier     CourierSnapshotDTO `gorm:"embedded;embeddedPrefix:delivery_courier_"`

	OrderStatus             string `gorm:"size:16;index;not null"`
	PaymentStatus           string `gorm:"size:16;index;not null"`
	PaymentMethod           string `gorm:"size:16"`
	PaidAt                  *time.Time
	PaymentSessionToken     string `gorm:"size:255"`
	PaymentRedirectURL      string `gorm:"type:text"`
	PaymentSessionExpiresAt *time.Time

	ActualWeightItems      datatypes.JSON      `gorm:"type:jsonb"`
	ActualWeight           decimal.NullDecimal `gorm:"type:numeric(8,2)"`
	ActualTotalAmount      *int64
	ProofVideoURL          string `gorm:"type:text"`
	ActualWeightRecordedAt *time.Time

	Notes               string    `gorm:"type:text"`
	SpecialInstructions string    `gorm:"type:text"`
	CreatedAt           time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// CourierSnapshotDTO is stored inline twice; an empty Company means no snapshot.
type CourierSnapshotDTO struct {
	Company               string `gorm:"size:64"`
	Name                  string `gorm:"size:64"`
	Code                  string `gorm:"size:32"`
	ServiceName           string `gorm:"size:64"`
	ServiceCode           string `gorm:"size:32"`
	Currency              string `gorm:"size:8"`
	Description           string `gorm:"type:text"`
	Duration              string `gorm:"size:64"`
	ShipmentDurationRange string `gorm:"size:32"`
	ShipmentDurationUnit  string `gorm:"size:16"`
	ServiceType           string `gorm:"size:32"`
	ShippingType          string `gorm:"size:32"`
	Rate                  int64
	ShippingFee           int64
	ShippingFeeDiscount   int64
	ShippingFeeSurcharge  int64
	ProviderOrderID       string `gorm:"size:64"`
	WaybillID             string `gorm:"size:64"`
	TrackingLink          string `gorm:"type:text"`
}

// LineItemDTO is one element of the items_detail and actual_weight_items JSON columns.
type LineItemDTO struct {
	ItemID       string          `json:"item_id"`
	ItemName     string          `json:"item_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	PricePerUnit int64           `json:"price_per_unit"`
	Subtotal     int64           `json:"subtotal"`
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	items, err := lineItemsJSON(o.Pricing().Items())
	if err != nil {
		return OrderDTO{}, err
	}

	c := o.Contact()
	dto := OrderDTO{
		ID:                  o.ID().Bytes(),
		OrderNumber:         o.Number().String(),
		CustomerID:          o.CustomerID().Bytes(),
		BranchID:            o.BranchID().Bytes(),
		PickupStaffID:       optionalID(o.PickupStaffID()),
		DeliveryStaffID:     optionalID(o.DeliveryStaffID()),
		CustomerName:        c.Name(),
		CustomerPhone:       c.Phone(),
		CustomerAddress:     c.Address(),
		CustomerLatitude:    c.Location().Latitude(),
		CustomerLongitude:   c.Location().Longitude(),
		PricingPath:         o.Pricing().Path().String(),
		ItemsDetail:         items,
		EstimatedWeight:     o.Pricing().EstimatedWeight(),
		PricePerKg:          o.Pricing().PricePerKg(),
		Subtotal:            o.Subtotal(),
		PickupShippingFee:   o.Pricing().PickupShippingFee(),
		DeliveryFee:         o.DeliveryFee(),
		DiscountAmount:      o.DiscountAmount(),
		DiscountCode:        o.DiscountCode(),
		TotalAmount:         o.TotalAmount(),
		PickupMethod:        o.PickupMethod().String(),
		PickupCourier:       snapshotFromDomain(o.PickupCourier()),
		PickupScheduledTime: o.PickupScheduledTime(),
		DeliveryMethod:      o.DeliveryMethod().String(),
		DeliveryCourier:     snapshotFromDomain(o.DeliveryCourier()),
		OrderStatus:         o.Status().String(),
		PaymentStatus:       o.PaymentStatus().String(),
		PaymentMethod:       o.PaymentMethod().String(),
		PaidAt:              o.PaidAt(),
		Notes:               o.Notes(),
		SpecialInstructions: o.SpecialInstructions(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	}

	if s := o.PaymentSession(); s != nil {
		expiresAt := s.ExpiresAt
		dto.PaymentSessionToken = s.Token
		dto.PaymentRedirectURL = s.RedirectURL
		dto.PaymentSessionExpiresAt = &expiresAt
	}

	if a := o.Actual(); a != nil {
		actualItems, err := lineItemsJSON(a.Items)
		if err != nil {
			return OrderDTO{}, err
		}
		total := a.TotalAmount
		recordedAt := a.RecordedAt
		dto.ActualWeightItems = actualItems
		dto.ActualTotalAmount = &total
		dto.ProofVideoURL = a.ProofVideoURL
		dto.ActualWeightRecordedAt = &recordedAt
		if a.Weight != nil {
			dto.ActualWeight = decimal.NewNullDecimal(*a.Weight)
		}
	}

	return dto, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}
	pickupStaffID, err := restoreOptionalID(dto.PickupStaffID)
	if err != nil {
		return nil, err
	}
	deliveryStaffID, err := restoreOptionalID(dto.DeliveryStaffID)
	if err != nil {
		return nil, err
	}

	number, err := order.ParseNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.CustomerLatitude, dto.CustomerLongitude)
	if err != nil {
		return nil, err
	}
	contact, err := order.NewContact(dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress, location)
	if err != nil {
		return nil, err
	}

	path, err := order.ParsePricingPath(dto.PricingPath)
	if err != nil {
		return nil, err
	}
	items, err := lineItemsFromJSON(dto.ItemsDetail)
	if err != nil {
		return nil, err
	}
	pricing, err := order.NewPricing(path, items, dto.EstimatedWeight, dto.PricePerKg, dto.Subtotal, dto.PickupShippingFee)
	if err != nil {
		return nil, err
	}

	pickupMethod, err := order.ParsePickupMethod(dto.PickupMethod)
	if err != nil {
		return nil, err
	}
	deliveryMethod, err := order.ParseDeliveryMethod(dto.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	pickupCourier, err := snapshotToDomain(dto.PickupCourier)
	if err != nil {
		return nil, err
	}
	deliveryCourier, err := snapshotToDomain(dto.DeliveryCourier)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.OrderStatus)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var session *order.PaymentSession
	if dto.PaymentSessionToken != "" {
		session = &order.PaymentSession{
			Token:       dto.PaymentSessionToken,
			RedirectURL: dto.PaymentRedirectURL,
		}
		if dto.PaymentSessionExpiresAt != nil {
			session.ExpiresAt = *dto.PaymentSessionExpiresAt
		}
	}

	actual, err := actualToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.State{
		ID:                  id,
		Number:              number,
		CustomerID:          customerID,
		BranchID:            branchID,
		PickupStaffID:       pickupStaffID,
		DeliveryStaffID:     deliveryStaffID,
		Contact:             contact,
		Pricing:             pricing,
		DeliveryFee:         dto.DeliveryFee,
		DiscountAmount:      dto.DiscountAmount,
		DiscountCode:        dto.DiscountCode,
		PickupMethod:        pickupMethod,
		PickupCourier:       pickupCourier,
		PickupScheduledTime: dto.PickupScheduledTime,
		DeliveryMethod:      deliveryMethod,
		DeliveryCourier:     deliveryCourier,
		Status:              status,
		PaymentStatus:       paymentStatus,
		PaymentMethod:       paymentMethod,
		PaymentSession:      session,
		PaidAt:              dto.PaidAt,
		Actual:              actual,
		Notes:               dto.Notes,
		SpecialInstructions: dto.SpecialInstructions,
		CreatedAt:           dto.CreatedAt,
		UpdatedAt:           dto.UpdatedAt,
	})
}

func actualToDomain(dto OrderDTO) (*order.ActualWeighing, error) {
	if dto.ActualWeightRecordedAt == nil {
		return nil, nil
	}

	items, err := lineItemsFromJSON(dto.ActualWeightItems)
	if err != nil {
		return nil, err
	}

	actual := &order.ActualWeighing{
		Items:         items,
		ProofVideoURL: dto.ProofVideoURL,
		RecordedAt:    *dto.ActualWeightRecordedAt,
	}
	if dto.ActualTotalAmount != nil {
		actual.TotalAmount = *dto.ActualTotalAmount
	}
	if dto.ActualWeight.Valid {
		w := dto.ActualWeight.Decimal
		actual.Weight = &w
	}
	return actual, nil
}

func snapshotFromDomain(s *order.CourierSnapshot) CourierSnapshotDTO {
	if s == nil {
		return CourierSnapshotDTO{}
	}

	q := s.Quote()
	return CourierSnapshotDTO{
		Company:               q.Company,
		Name:                  q.CourierName,
		Code:                  q.CourierCode,
		ServiceName:           q.ServiceName,
		ServiceCode:           q.ServiceCode,
		Currency:              q.Currency,
		Description:           q.Description,
		Duration:              q.Duration,
		ShipmentDurationRange: q.ShipmentDurationRange,
		ShipmentDurationUnit:  q.ShipmentDurationUnit,
		ServiceType:           q.ServiceType,
		ShippingType:          q.ShippingType,
		Rate:                  q.Rate,
		ShippingFee:           q.ShippingFee,
		ShippingFeeDiscount:   q.ShippingFeeDiscount,
		ShippingFeeSurcharge:  q.ShippingFeeSurcharge,
		ProviderOrderID:       q.Tracking.ProviderOrderID,
		WaybillID:             q.Tracking.WaybillID,
		TrackingLink:          q.Tracking.Link,
	}
}

func snapshotToDomain(dto CourierSnapshotDTO) (*order.CourierSnapshot, error) {
	if dto.Company == "" {
		return nil, nil
	}

	s, err := order.NewCourierSnapshot(order.CourierQuote{
		Company:               dto.Company,
		CourierName:           dto.Name,
		CourierCode:           dto.Code,
		ServiceName:           dto.ServiceName,
		ServiceCode:           dto.ServiceCode,
		Currency:              dto.Currency,
		Description:           dto.Description,
		Duration:              dto.Duration,
		ShipmentDurationRange: dto.ShipmentDurationRange,
		ShipmentDurationUnit:  dto.ShipmentDurationUnit,
		ServiceType:           dto.ServiceType,
		ShippingType:          dto.ShippingType,
		Rate:                  dto.Rate,
		ShippingFee:           dto.ShippingFee,
		ShippingFeeDiscount:   dto.ShippingFeeDiscount,
		ShippingFeeSurcharge:  dto.ShippingFeeSurcharge,
		Tracking: order.CourierTracking{
			ProviderOrderID: dto.ProviderOrderID,
			WaybillID:       dto.WaybillID,
			Link:            dto.TrackingLink,
		},
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func lineItemsJSON(items []order.LineItem) (datatypes.JSON, error) {
	if len(items) == 0 {
		return nil, nil
	}

	dtos := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, LineItemDTO{
			ItemID:       item.ItemID().String(),
			ItemName:     item.Name(),
			Quantity:     item.Quantity(),
			Unit:         item.Unit().String(),
			PricePerUnit: item.PricePerUnit(),
			Subtotal:     item.Subtotal(),
		})
	}

	raw, err := json.Marshal(dtos)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func lineItemsFromJSON(raw datatypes.JSON) ([]order.LineItem, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var dtos []LineItemDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		itemID, err := kernel.UUIDFromString(dto.ItemID)
		if err != nil {
			return nil, err
		}
		unit, err := order.ParseUnit(dto.Unit)
		if err != nil {
			return nil, err
		}
		item, err := order.NewLineItem(itemID, dto.ItemName, dto.Quantity, unit, dto.PricePerUnit, dto.Subtotal)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreOptionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
