package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetCustomerOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrderStatsQueryHandler(db *gorm.DB) GetCustomerOrderStatsQueryHandler {
	return GetCustomerOrderStatsQueryHandler{db: db}
}

func (h GetCustomerOrderStatsQueryHandler) Handle(ctx context.Context, query GetCustomerOrderStatsQuery) (CustomerOrderStats, error) {
	if err := query.Validate(); err != nil {
		return CustomerOrderStats{}, err
	}

	var stats CustomerOrderStats
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COUNT(*) FILTER (WHERE order_status = @completed) AS completed_orders,
			COUNT(*) FILTER (WHERE order_status NOT IN (@completed, @cancelled)) AS active_orders
		FROM orders
		WHERE customer_id = @customer
	`, map[string]any{
		"completed": order.StatusCompleted.String(),
		"cancelled": order.StatusCancelled.String(),
		"customer":  query.Actor().Bytes(),
	}).Scan(&stats).Error
	if err != nil {
		return CustomerOrderStats{}, err
	}

	return stats, nil
}
