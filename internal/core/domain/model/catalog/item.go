package catalog

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via RestoreItem")

// Item is a priced laundry service in a branch catalog.
type Item struct {
	id         kernel.UUID
	branchID   kernel.UUID
	categoryID kernel.UUID
	name       string
	unit       order.Unit
	price      int64
	active     bool
	guard      guard.ConstructorGuard
}

func RestoreItem(
	id, branchID, categoryID kernel.UUID,
	name string,
	unit order.Unit,
	price int64,
	active bool,
) (*Item, error) {
	var priceErr error
	if price < 0 {
		priceErr = errs.NewValueIsOutOfRangeError("price", price, 0, "unbounded")
	}

	if err := errors.Join(id.Validate(), branchID.Validate(), categoryID.Validate(), priceErr); err != nil {
		return nil, err
	}

	return &Item{
		id:         id,
		branchID:   branchID,
		categoryID: categoryID,
		name:       name,
		unit:       unit,
		price:      price,
		active:     active,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID         { return i.id }
func (i *Item) BranchID() kernel.UUID   { return i.branchID }
func (i *Item) CategoryID() kernel.UUID { return i.categoryID }
func (i *Item) Name() string            { return i.name }
func (i *Item) Unit() order.Unit        { return i.unit }
func (i *Item) Price() int64            { return i.price }
func (i *Item) IsActive() bool          { return i.active }

// CheckOrderable fails unless the item is active and listed by branchID.
func (i *Item) CheckOrderable(branchID kernel.UUID) error {
	if !i.branchID.IsEqual(branchID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"items_detail.item_id", fmt.Errorf("item %s does not belong to branch %s", i.id, branchID))
	}
	if !i.active {
		return errs.NewValueIsInvalidErrorWithCause(
			"items_detail.item_id", fmt.Errorf("item %s is not available", i.id))
	}
	return nil
}

// CheckPriced fails unless line is charged at the catalog price and its subtotal
// is quantity times that price, rounded to the rupiah.
func (i *Item) CheckPriced(line order.LineItem) error {
	if line.PricePerUnit() != i.price {
		return errs.NewValueIsInvalidErrorWithCause(
			"items_detail.price_per_unit", fmt.Errorf("item %s costs %d, not %d", i.id, i.price, line.PricePerUnit()))
	}
	expected := line.Quantity().Mul(decimal.NewFromInt(i.price)).Round(0).IntPart()
	if line.Subtotal() != expected {
		return errs.NewValueIsInvalidErrorWithCause(
			"items_detail.subtotal", fmt.Errorf("item %s subtotal must be %d, got %d", i.id, expected, line.Subtotal()))
	}
	return nil
}
