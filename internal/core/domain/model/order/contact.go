package order

import (
	"errors"
	"unicode/utf8"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	maxCustomerNameLen  = 100
	maxCustomerPhoneLen = 20
)

var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact")

// Contact is where and whom the pickup courier or staff visits.
type Contact struct {
	name     string
	phone    string
	address  string
	location kernel.Location
	guard    guard.ConstructorGuard
}

// NewContact validates the pickup contact. name is optional.
func NewContact(name, phone, address string, location kernel.Location) (Contact, error) {
	var nameErr, phoneErr error
	if utf8.RuneCountInString(name) > maxCustomerNameLen {
		nameErr = errs.NewValueIsOutOfRangeError("customer_name", utf8.RuneCountInString(name), 0, maxCustomerNameLen)
	}
	if phone == "" {
		phoneErr = errs.NewValueIsRequiredError("customer_phone")
	} else if len(phone) > maxCustomerPhoneLen {
		phoneErr = errs.NewValueIsOutOfRangeError("customer_phone", len(phone), 1, maxCustomerPhoneLen)
	}

	if err := errors.Join(
		nameErr,
		phoneErr,
		requireText("customer_address", address),
		location.Validate(),
	); err != nil {
		return Contact{}, err
	}

	return Contact{
		name:     name,
		phone:    phone,
		address:  address,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

func (c Contact) Name() string {
	return c.name
}

func (c Contact) Phone() string {
	return c.phone
}

func (c Contact) Address() string {
	return c.address
}

func (c Contact) Location() kernel.Location {
	return c.location
}
