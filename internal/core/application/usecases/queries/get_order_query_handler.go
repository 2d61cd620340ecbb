package queries

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads the order detail. Another customer's order is
// reported as ForbiddenError, not as missing.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	view, err := findOrder(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	if view.CustomerID != query.Actor().Bytes() {
		return OrderView{}, errs.NewForbiddenError(query.Actor(), "order "+view.OrderNumber)
	}

	return view, nil
}

func findOrder(ctx context.Context, db *gorm.DB, id kernel.UUID) (OrderView, error) {
	var view OrderView
	if err := db.WithContext(ctx).First(&view, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderView{}, errs.NewObjectNotFoundError("order", id.String())
		}
		return OrderView{}, err
	}
	return view, nil
}
