package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem")

	// MinQuantity is the smallest quantity a line may carry (0.1 kg or pcs).
	MinQuantity = decimal.New(1, -1)
)

// Unit is the measure a catalog item is priced in.
type Unit int

const (
	UnitUnknown Unit = iota
	UnitKg
	UnitPcs
)

func ParseUnit(s string) (Unit, error) {
	switch s {
	case "kg":
		return UnitKg, nil
	case "pcs":
		return UnitPcs, nil
	default:
		return UnitUnknown, errs.NewValueIsInvalidErrorWithCause("unit", fmt.Errorf("%q is not one of kg, pcs", s))
	}
}

func (u Unit) String() string {
	switch u {
	case UnitKg:
		return "kg"
	case UnitPcs:
		return "pcs"
	default:
		return "unknown"
	}
}

// LineItem is one priced catalog item of an estimate or an actual weighing.
// The subtotal is taken as supplied.
type LineItem struct {
	itemID       kernel.UUID
	name         string
	quantity     decimal.Decimal
	unit         Unit
	pricePerUnit int64
	subtotal     int64
	guard        guard.ConstructorGuard
}

func NewLineItem(itemID kernel.UUID, name string, quantity decimal.Decimal, unit Unit, pricePerUnit, subtotal int64) (LineItem, error) {
	item := LineItem{
		itemID:       itemID,
		name:         name,
		quantity:     quantity,
		unit:         unit,
		pricePerUnit: pricePerUnit,
		subtotal:     subtotal,
		guard:        guard.NewConstructorGuard(),
	}

	var unitErr error
	if unit != UnitKg && unit != UnitPcs {
		unitErr = errs.NewValueIsInvalidErrorWithCause("unit", fmt.Errorf("%d is not a valid unit", unit))
	}

	var quantityErr error
	if quantity.LessThan(MinQuantity) {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity.String(), MinQuantity.String(), "unbounded")
	}

	if err := errors.Join(
		itemID.Validate(),
		requireText("item_name", name),
		quantityErr,
		unitErr,
		requireNonNegative("price_per_unit", pricePerUnit),
		requireNonNegative("subtotal", subtotal),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l LineItem) ItemID() kernel.UUID {
	return l.itemID
}

func (l LineItem) Name() string {
	return l.name
}

func (l LineItem) Quantity() decimal.Decimal {
	return l.quantity
}

func (l LineItem) Unit() Unit {
	return l.unit
}

func (l LineItem) PricePerUnit() int64 {
	return l.pricePerUnit
}

func (l LineItem) Subtotal() int64 {
	return l.subtotal
}

// SumSubtotals adds the subtotals of items.
func SumSubtotals(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.subtotal
	}
	return total
}
