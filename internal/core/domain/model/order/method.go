package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// PickupMethod is how the laundry travels from the customer to the branch.
type PickupMethod int

const (
	PickupUnknown PickupMethod = iota
	PickupFree
	PickupGojek
	PickupGrab
)

func ParsePickupMethod(s string) (PickupMethod, error) {
	switch s {
	case "free_pickup":
		return PickupFree, nil
	case "gojek":
		return PickupGojek, nil
	case "grab":
		return PickupGrab, nil
	default:
		return PickupUnknown, errs.NewValueIsInvalidErrorWithCause(
			"pickup_method", fmt.Errorf("%q is not one of free_pickup, gojek, grab", s))
	}
}

func (m PickupMethod) Validate() error {
	if m < PickupFree || m > PickupGrab {
		return errs.NewValueIsInvalidErrorWithCause("pickup_method", fmt.Errorf("%d is not a valid pickup method", m))
	}
	return nil
}

func (m PickupMethod) String() string {
	switch m {
	case PickupFree:
		return "free_pickup"
	case PickupGojek:
		return "gojek"
	case PickupGrab:
		return "grab"
	default:
		return "unknown"
	}
}

func (m PickupMethod) IsFree() bool {
	return m == PickupFree
}

// IsCourier reports whether a third-party courier performs the pickup.
func (m PickupMethod) IsCourier() bool {
	return m == PickupGojek || m == PickupGrab
}

// DeliveryMethod is how the cleaned laundry returns to the customer.
// DeliveryNone means the customer has not chosen yet.
type DeliveryMethod int

const (
	DeliveryNone DeliveryMethod = iota
	DeliverySelfPickup
	DeliveryFree
	DeliveryGojek
	DeliveryGrab
)

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch s {
	case "":
		return DeliveryNone, nil
	case "self_pickup":
		return DeliverySelfPickup, nil
	case "free_delivery":
		return DeliveryFree, nil
	case "gojek":
		return DeliveryGojek, nil
	case "grab":
		return DeliveryGrab, nil
	default:
		return DeliveryNone, errs.NewValueIsInvalidErrorWithCause(
			"delivery_method", fmt.Errorf("%q is not one of self_pickup, free_delivery, gojek, grab", s))
	}
}

func (m DeliveryMethod) String() string {
	switch m {
	case DeliverySelfPickup:
		return "self_pickup"
	case DeliveryFree:
		return "free_delivery"
	case DeliveryGojek:
		return "gojek"
	case DeliveryGrab:
		return "grab"
	default:
		return ""
	}
}

func (m DeliveryMethod) IsSelfPickup() bool {
	return m == DeliverySelfPickup
}

func (m DeliveryMethod) IsFree() bool {
	return m == DeliveryFree
}

func (m DeliveryMethod) IsCourier() bool {
	return m == DeliveryGojek || m == DeliveryGrab
}
