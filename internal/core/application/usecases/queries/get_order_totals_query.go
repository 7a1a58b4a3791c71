package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderTotalsQueryIsNotConstructed = errors.New(
	"GetOrderTotalsQuery must be created via NewGetOrderTotalsQuery constructor",
)

// GetOrderTotalsQuery retrieves order counts grouped by status.
// Used for periodic operational reporting.
type GetOrderTotalsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderTotalsQuery creates a query to retrieve order totals.
// This is a parameterless query that counts every stored order.
func NewGetOrderTotalsQuery() GetOrderTotalsQuery {
	return GetOrderTotalsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderTotalsQueryIsNotConstructed if validation fails.
func (q GetOrderTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTotalsQueryIsNotConstructed)
}

// GetOrderTotalsQueryResponse represents the order count for one status.
type GetOrderTotalsQueryResponse struct {
	Status order.Status
	Count  int
}
