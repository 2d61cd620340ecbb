package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// MaxOrderNumberAttempts bounds the retries after an order number collision.
const MaxOrderNumberAttempts = 3

// CreateOrderCommandHandler prices and persists a new order together with the
// branch's new-order notification.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewPricingCalculator())
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println(o.Number()) // ORD-20250301-7KQ2ZD
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.PricingCalculator
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, calculator services.PricingCalculator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle creates the order. A taken order number aborts the transaction, so each
// retry runs in a fresh unit of work with a freshly generated number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var err error
	for attempt := 1; attempt <= MaxOrderNumberAttempts; attempt++ {
		var created *order.Order
		created, err = h.attempt(ctx, cmd, time.Now())
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("order number still taken after %d attempts: %w", MaxOrderNumberAttempts, err)
}

func (h *CreateOrderCommandHandler) attempt(ctx context.Context, cmd CreateOrderCommand, now time.Time) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	b, err := uow.BranchRepository().Get(ctx, cmd.BranchID())
	if err != nil {
		return nil, err
	}
	if err = b.SupportsPickup(cmd.PickupMethod()); err != nil {
		return nil, err
	}

	if len(cmd.Items()) > 0 {
		items, err := uow.CatalogRepository().GetItems(ctx, cmd.ItemIDs())
		if err != nil {
			return nil, err
		}
		if err = checkOrderable(cmd.BranchID(), cmd.Items(), items); err != nil {
			return nil, err
		}
	}

	var fee *int64
	if snapshot := cmd.PickupCourier(); snapshot != nil {
		f := snapshot.ShippingFee()
		fee = &f
	}
	pricing, err := h.calculator.Calculate(services.PricingInput{
		Items:             cmd.Items(),
		EstimatedWeight:   cmd.EstimatedWeight(),
		PricePerKg:        b.PricePerKg(),
		PickupMethod:      cmd.PickupMethod(),
		PickupShippingFee: fee,
	})
	if err != nil {
		return nil, err
	}

	number, err := order.GenerateNumber(now)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(order.Draft{
		ID:                  kernel.NewUUID(),
		Number:              number,
		CustomerID:          cmd.CustomerID(),
		BranchID:            cmd.BranchID(),
		Contact:             cmd.Contact(),
		Pricing:             pricing,
		PickupMethod:        cmd.PickupMethod(),
		PickupCourier:       cmd.PickupCourier(),
		PickupScheduledTime: cmd.PickupScheduledTime(),
		Notes:               cmd.Notes(),
		SpecialInstructions: cmd.SpecialInstructions(),
		CreatedAt:           now,
	})
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = enqueue(ctx, uow, notification.KindBranchNewOrder, o, b, now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// checkOrderable matches every line against the branch catalog: the item must be
// listed and active, and the line must carry the catalog price.
func checkOrderable(branchID kernel.UUID, lines []order.LineItem, items []*catalog.Item) error {
	found := make(map[kernel.UUID]*catalog.Item, len(items))
	for _, item := range items {
		found[item.ID()] = item
	}

	var errList []error
	for _, line := range lines {
		item, ok := found[line.ItemID()]
		if !ok {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"items_detail.item_id", fmt.Errorf("item %s not found", line.ItemID())))
			continue
		}
		if err := item.CheckOrderable(branchID); err != nil {
			errList = append(errList, err)
			continue
		}
		errList = append(errList, item.CheckPriced(line))
	}
	return errors.Join(errList...)
}
