package queries

import (
	"context"

	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CalculateRevenueQueryHandler aggregates paid order totals in the database.
type CalculateRevenueQueryHandler struct {
	db *gorm.DB
}

// NewCalculateRevenueQueryHandler creates a handler for revenue queries.
func NewCalculateRevenueQueryHandler(db *gorm.DB) CalculateRevenueQueryHandler {
	return CalculateRevenueQueryHandler{db: db}
}

// Handle returns zero revenue when there are no paid orders.
func (h CalculateRevenueQueryHandler) Handle(
	ctx context.Context,
	query CalculateRevenueQuery,
) (CalculateRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CalculateRevenueQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_price), 0),
			COUNT(*)
		FROM orders
		WHERE status = ?
	`, order.Paid.String()).Row()

	var (
		revenue decimal.Decimal
		count   int64
	)
	if err := row.Scan(&revenue, &count); err != nil {
		return CalculateRevenueQueryResponse{}, err
	}

	return CalculateRevenueQueryResponse{Revenue: revenue, PaidOrders: count}, nil
}
