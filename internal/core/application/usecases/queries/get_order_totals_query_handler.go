package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderTotalsQueryHandler counts stored orders per status.
type GetOrderTotalsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTotalsQueryHandler creates a handler for order total queries.
// Requires a GORM database connection for query execution.
func NewGetOrderTotalsQueryHandler(db *gorm.DB) GetOrderTotalsQueryHandler {
	return GetOrderTotalsQueryHandler{db: db}
}

// Handle executes the query to count orders grouped by status.
// Statuses with no orders are absent from the result.
func (h GetOrderTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTotalsQuery,
) ([]GetOrderTotalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	totals := make([]GetOrderTotalsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		var count int

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		orderStatus := order.Status(status)
		if statusErr := orderStatus.Validate(); statusErr != nil {
			return nil, statusErr
		}

		totals = append(totals, GetOrderTotalsQueryResponse{
			Status: orderStatus,
			Count:  count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}
