package queries

import (
	"errors"

	"ridetrack/internal/core/domain/model/user"
	"ridetrack/internal/pkg/errs"
	"ridetrack/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery retrieves a paginated page of user identity projections,
// optionally narrowed by role.
type ListUsersQuery struct {
	role     string
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListUsersQuery creates a paginated user listing query. An empty role
// means all roles. Page defaults to 1 and pageSize to 10 when not positive.
func NewListUsersQuery(role string, page, pageSize int) (ListUsersQuery, error) {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		return ListUsersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}
	if role != "" {
		if err := user.Role(role).Validate(); err != nil {
			return ListUsersQuery{}, err
		}
	}

	return ListUsersQuery{
		role:     role,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Role() string  { return q.role }
func (q ListUsersQuery) Page() int     { return q.page }
func (q ListUsersQuery) PageSize() int { return q.pageSize }

// ListUsersResponse is one page of users plus pagination metadata.
type ListUsersResponse struct {
	Users      []UserSummary `json:"users"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int64         `json:"totalPages"`
}
