package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderInput is the raw order request. PickupCourier is the accepted quote
// and is required for gojek and grab pickups; it is ignored for free pickup.
type CreateOrderInput struct {
	CustomerID          kernel.UUID
	BranchID            kernel.UUID
	Contact             order.Contact
	Items               []order.LineItem
	EstimatedWeight     int
	PickupMethod        order.PickupMethod
	PickupCourier       *order.CourierQuote
	PickupScheduledTime string
	Notes               string
	SpecialInstructions string
}

// CreateOrderCommand represents a customer placing a laundry order at a branch.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(CreateOrderInput{
//	    CustomerID:      actor,
//	    BranchID:        branchID,
//	    Contact:         contact,
//	    EstimatedWeight: 3,
//	    PickupMethod:    order.PickupFree,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID          kernel.UUID
	branchID            kernel.UUID
	contact             order.Contact
	items               []order.LineItem
	estimatedWeight     int
	pickupMethod        order.PickupMethod
	pickupCourier       *order.CourierSnapshot
	pickupScheduledTime string
	notes               string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Branch, catalog and pricing
// checks need the store and happen in the handler.
func NewCreateOrderCommand(in CreateOrderInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		pickupScheduledTime: in.PickupScheduledTime,
		notes:               in.Notes,
		specialInstructions: in.SpecialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(in.CustomerID),
		cmd.setBranchID(in.BranchID),
		cmd.setContact(in.Contact),
		cmd.setItems(in.Items),
		cmd.setEstimatedWeight(in.EstimatedWeight),
		cmd.setPickup(in.PickupMethod, in.PickupCourier),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) BranchID() kernel.UUID {
	return c.branchID
}

func (c CreateOrderCommand) Contact() order.Contact {
	return c.contact
}

func (c CreateOrderCommand) Items() []order.LineItem {
	return c.items
}

func (c CreateOrderCommand) EstimatedWeight() int {
	return c.estimatedWeight
}

func (c CreateOrderCommand) PickupMethod() order.PickupMethod {
	return c.pickupMethod
}

// PickupCourier is nil for free pickup.
func (c CreateOrderCommand) PickupCourier() *order.CourierSnapshot {
	return c.pickupCourier
}

func (c CreateOrderCommand) PickupScheduledTime() string {
	return c.pickupScheduledTime
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

// ItemIDs lists the catalog items referenced by the order lines.
func (c CreateOrderCommand) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.ItemID())
	}
	return ids
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setBranchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("branch_id", err)
	}
	c.branchID = id
	return nil
}

func (c *CreateOrderCommand) setContact(contact order.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	c.contact = contact
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = append([]order.LineItem(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setEstimatedWeight(weight int) error {
	if weight < 0 {
		return errs.NewValueIsOutOfRangeError("estimated_weight", weight, 0, "unbounded")
	}
	c.estimatedWeight = weight
	return nil
}

func (c *CreateOrderCommand) setPickup(method order.PickupMethod, quote *order.CourierQuote) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.pickupMethod = method

	if !method.IsCourier() {
		return nil
	}
	if quote == nil {
		return order.ErrMissingCourierSnapshot
	}
	snapshot, err := order.NewCourierSnapshot(*quote)
	if err != nil {
		return err
	}
	c.pickupCourier = &snapshot
	return nil
}
