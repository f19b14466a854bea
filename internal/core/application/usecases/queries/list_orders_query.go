package queries

import (
	"errors"
	"time"

	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/order"
	"ridetrack/internal/pkg/errs"
	"ridetrack/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// OrderFilter narrows a ListOrdersQuery. Zero-valued fields are ignored.
// The date range is inclusive on both ends: DateTo covers the whole day it
// names, and OrderNumber matches as a case-insensitive substring.
type OrderFilter struct {
	RiderID       *kernel.UUID
	DriverID      *kernel.UUID
	Status        string
	PaymentStatus string
	OrderNumber   string
	DateFrom      *time.Time
	DateTo        *time.Time
}

// ListOrdersQuery retrieves a filtered, paginated page of orders.
type ListOrdersQuery struct {
	filter   OrderFilter
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paginated order listing query.
// Page defaults to 1 and pageSize to 10 when not positive.
func NewListOrdersQuery(filter OrderFilter, page, pageSize int) (ListOrdersQuery, error) {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		return ListOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	if filter.Status != "" {
		if err := order.Status(filter.Status).Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if filter.PaymentStatus != "" {
		if err := order.PaymentStatus(filter.PaymentStatus).Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		filter:   filter,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() OrderFilter { return q.filter }
func (q ListOrdersQuery) Page() int           { return q.page }
func (q ListOrdersQuery) PageSize() int       { return q.pageSize }

// ListOrdersResponse is one page of orders plus pagination metadata.
type ListOrdersResponse struct {
	Orders     []OrderView `json:"orders"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int64       `json:"totalPages"`
}
