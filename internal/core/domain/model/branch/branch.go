package branch

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrBranchIsNotConstructed = errors.New("Branch must be created via RestoreBranch")

// PickupOptions are the pickup methods a branch offers.
type PickupOptions struct {
	Free  bool
	Gojek bool
	Grab  bool
}

// Any reports whether the branch declared at least one option.
func (p PickupOptions) Any() bool {
	return p.Free || p.Gojek || p.Grab
}

// Branch is a laundry outlet run by exactly one owner account.
// Branches are managed elsewhere; this service only reads them.
type Branch struct {
	id         kernel.UUID
	ownerID    kernel.UUID
	name       string
	phone      string
	address    string
	location   *kernel.Location
	pricePerKg int64
	pickup     PickupOptions
	guard      guard.ConstructorGuard
}

// RestoreBranch rebuilds a branch from storage. location may be nil when the
// branch has not set its coordinates.
func RestoreBranch(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	phone string,
	address string,
	location *kernel.Location,
	pricePerKg int64,
	pickup PickupOptions,
) (*Branch, error) {
	var locationErr, priceErr error
	if location != nil {
		locationErr = location.Validate()
	}
	if pricePerKg < 0 {
		priceErr = errs.NewValueIsOutOfRangeError("price_per_kg", pricePerKg, 0, "unbounded")
	}

	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		locationErr,
		priceErr,
	); err != nil {
		return nil, err
	}

	return &Branch{
		id:         id,
		ownerID:    ownerID,
		name:       name,
		phone:      phone,
		address:    address,
		location:   location,
		pricePerKg: pricePerKg,
		pickup:     pickup,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (b *Branch) Validate() error {
	if b == nil {
		return ErrBranchIsNotConstructed
	}
	return b.guard.Validate(ErrBranchIsNotConstructed)
}

func (b *Branch) ID() kernel.UUID {
	return b.id
}

func (b *Branch) OwnerID() kernel.UUID {
	return b.ownerID
}

func (b *Branch) Name() string {
	return b.name
}

func (b *Branch) Phone() string {
	return b.phone
}

func (b *Branch) Address() string {
	return b.address
}

// Location returns the branch coordinates and false when none are set.
func (b *Branch) Location() (kernel.Location, bool) {
	if b.location == nil {
		return kernel.Location{}, false
	}
	return *b.location, true
}

func (b *Branch) PricePerKg() int64 {
	return b.pricePerKg
}

func (b *Branch) Pickup() PickupOptions {
	return b.pickup
}

// AuthorizeOwner fails with ForbiddenError unless actor owns the branch.
func (b *Branch) AuthorizeOwner(actor kernel.UUID) error {
	if !b.ownerID.IsEqual(actor) {
		return errs.NewForbiddenError(actor, "branch "+b.id.String())
	}
	return nil
}

// SupportsPickup checks the method against the branch's declared options.
// A branch that declared none accepts every method.
func (b *Branch) SupportsPickup(method order.PickupMethod) error {
	if !b.pickup.Any() {
		return nil
	}

	var offered bool
	switch method {
	case order.PickupFree:
		offered = b.pickup.Free
	case order.PickupGojek:
		offered = b.pickup.Gojek
	case order.PickupGrab:
		offered = b.pickup.Grab
	}
	if !offered {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickup_method", fmt.Errorf("branch %s does not offer %s", b.name, method))
	}
	return nil
}
