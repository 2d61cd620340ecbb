package queries

type CourierOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// AvailableCouriers lists the couriers a customer may pick for pickup or delivery.
func AvailableCouriers() []CourierOption {
	return []CourierOption{
		{Code: "gojek", Name: "Gojek"},
		{Code: "grab", Name: "Grab"},
	}
}
