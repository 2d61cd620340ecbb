package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery pages through the actor's orders, newest first.
// A zero page or perPage falls back to 1 and DefaultPerPage.
type ListCustomerOrdersQuery struct {
	actor   kernel.UUID
	page    int
	perPage int

	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(actor kernel.UUID, page, perPage int) (ListCustomerOrdersQuery, error) {
	if page == 0 {
		page = 1
	}
	if perPage == 0 {
		perPage = DefaultPerPage
	}

	var errList []error
	if err := actor.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if page < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded"))
	}
	if perPage < 1 || perPage > MaxPerPage {
		errList = append(errList, errs.NewValueIsOutOfRangeError("per_page", perPage, 1, MaxPerPage))
	}
	if err := errors.Join(errList...); err != nil {
		return ListCustomerOrdersQuery{}, err
	}

	return ListCustomerOrdersQuery{
		actor:   actor,
		page:    page,
		perPage: perPage,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) Actor() kernel.UUID { return q.actor }
func (q ListCustomerOrdersQuery) Page() int          { return q.page }
func (q ListCustomerOrdersQuery) PerPage() int       { return q.perPage }

type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

type OrderPage struct {
	Data []OrderView `json:"data"`
	Meta PageMeta    `json:"meta"`
}
