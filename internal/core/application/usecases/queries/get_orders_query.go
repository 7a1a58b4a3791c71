package queries

import (
	"errors"
	"strconv"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves one page of orders in creation sequence.
// Page numbering starts at 1; both parameters arrive as raw strings from
// the API boundary and must be strictly positive decimal integers.
//
// Example:
//
//	query, err := NewGetOrdersQuery("2", "5")
//	if err != nil {
//	    return fmt.Errorf("bad paging parameters: %w", err)
//	}
//
//	orders, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	page  int
	limit int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paging query from raw page and limit values.
// Values such as "0", "-1", "1.5" or "abc" are rejected as invalid.
func NewGetOrdersQuery(page, limit string) (GetOrdersQuery, error) {
	getOrdersQuery := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		getOrdersQuery.setPage(page),
		getOrdersQuery.setLimit(limit),
	)
	if err != nil {
		return GetOrdersQuery{}, err
	}

	return getOrdersQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of orders preceding the requested page.
func (q GetOrdersQuery) Offset() int {
	return q.limit * (q.page - 1)
}

func (q *GetOrdersQuery) setPage(page string) error {
	value, err := parsePositiveInt("page", page)
	if err != nil {
		return err
	}

	q.page = value
	return nil
}

func (q *GetOrdersQuery) setLimit(limit string) error {
	value, err := parsePositiveInt("limit", limit)
	if err != nil {
		return err
	}

	q.limit = value
	return nil
}

// parsePositiveInt accepts only unsigned decimal digit strings, so signed
// forms like "+3" that strconv would otherwise admit are rejected too.
func parsePositiveInt(paramName, raw string) (int, error) {
	if raw == "" {
		return 0, errs.NewValueIsRequiredError(paramName)
	}

	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, errs.NewValueIsInvalidError(paramName)
		}
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	if value < 1 {
		return 0, errs.NewValueIsInvalidError(paramName)
	}

	return value, nil
}

// GetOrdersQueryResponse represents one order in a listing page.
//
// Example:
//
//	response := GetOrdersQueryResponse{
//	    ID:       kernel.NewUUID(),
//	    Distance: 1830,
//	    Status:   order.Unassigned,
//	}
type GetOrdersQueryResponse struct {
	ID       kernel.UUID
	Distance int
	Status   order.Status
}
