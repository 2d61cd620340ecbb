package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

func (h ListCustomerOrdersQueryHandler) Handle(ctx context.Context, query ListCustomerOrdersQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}

	scope := h.db.WithContext(ctx).Model(&OrderView{}).Where("customer_id = ?", query.Actor().Bytes())

	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return OrderPage{}, err
	}

	views := make([]OrderView, 0, query.PerPage())
	if total > 0 {
		err := latestOrders(scope.Session(&gorm.Session{})).
			Offset((query.Page() - 1) * query.PerPage()).
			Limit(query.PerPage()).
			Find(&views).Error
		if err != nil {
			return OrderPage{}, err
		}
	}

	lastPage := int((total + int64(query.PerPage()) - 1) / int64(query.PerPage()))
	if lastPage == 0 {
		lastPage = 1
	}

	return OrderPage{
		Data: views,
		Meta: PageMeta{
			CurrentPage: query.Page(),
			PerPage:     query.PerPage(),
			Total:       total,
			LastPage:    lastPage,
		},
	}, nil
}
