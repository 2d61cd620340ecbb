package queries

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// GetBranchStatsQueryHandler aggregates the owner's branch dashboard. An actor
// without a branch gets ForbiddenError.
type GetBranchStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetBranchStatsQueryHandler(db *gorm.DB) GetBranchStatsQueryHandler {
	return GetBranchStatsQueryHandler{db: db}
}

func (h GetBranchStatsQueryHandler) Handle(ctx context.Context, query GetBranchStatsQuery) (BranchStats, error) {
	if err := query.Validate(); err != nil {
		return BranchStats{}, err
	}

	db := h.db.WithContext(ctx)
	branchID, err := ownedBranchID(db, query.Actor())
	if err != nil {
		return BranchStats{}, err
	}

	stats := BranchStats{
		BranchID:       branchID.String(),
		OrdersByStatus: make(map[string]int64, len(order.Statuses())),
	}
	for _, s := range order.Statuses() {
		stats.OrdersByStatus[s.String()] = 0
	}

	var counts []struct {
		OrderStatus string
		Count       int64
	}
	err = db.Model(&OrderView{}).
		Select("order_status, COUNT(*) AS count").
		Where("branch_id = ?", branchID).
		Group("order_status").
		Scan(&counts).Error
	if err != nil {
		return BranchStats{}, err
	}
	for _, c := range counts {
		stats.OrdersByStatus[c.OrderStatus] = c.Count
		stats.TotalOrders += c.Count
	}

	cal := (&now.Config{WeekStartDay: time.Monday, TimeLocation: query.At().Location()}).With(query.At())
	windows := []struct {
		from, to time.Time
		into     *int64
	}{
		{cal.BeginningOfDay(), cal.EndOfDay(), &stats.Revenue.Today},
		{cal.BeginningOfWeek(), cal.EndOfWeek(), &stats.Revenue.Week},
		{cal.BeginningOfMonth(), cal.EndOfMonth(), &stats.Revenue.Month},
	}
	for _, w := range windows {
		err = db.Model(&OrderView{}).
			Select("COALESCE(SUM(total_amount), 0)").
			Where("branch_id = ? AND payment_status = ? AND created_at BETWEEN ? AND ?",
				branchID, order.PaymentPaid.String(), w.from, w.to).
			Scan(w.into).Error
		if err != nil {
			return BranchStats{}, err
		}
	}

	stats.RecentOrders = make([]OrderView, 0, RecentOrdersLimit)
	err = latestOrders(db.Where("branch_id = ?", branchID)).
		Limit(RecentOrdersLimit).
		Find(&stats.RecentOrders).Error
	if err != nil {
		return BranchStats{}, err
	}

	return stats, nil
}

func ownedBranchID(db *gorm.DB, actor kernel.UUID) (uuid.UUID, error) {
	var row struct{ ID uuid.UUID }
	err := db.Table("branches").Select("id").Where("owner_id = ?", actor.Bytes()).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, errs.NewForbiddenError(actor, "branch dashboard")
	}
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}
