package queries

import (
	"errors"

	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCalculateRevenueQueryIsNotConstructed = errors.New(
	"CalculateRevenueQuery must be created via NewCalculateRevenueQuery constructor",
)

// CalculateRevenueQuery sums the totals of all paid orders.
//
// Example:
//
//	resp, err := handler.Handle(ctx, NewCalculateRevenueQuery())
//	fmt.Println(resp.String()) // "12.50"
type CalculateRevenueQuery struct {
	guard guard.ConstructorGuard
}

// NewCalculateRevenueQuery creates the parameterless revenue query.
func NewCalculateRevenueQuery() CalculateRevenueQuery {
	return CalculateRevenueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CalculateRevenueQuery) Validate() error {
	return q.guard.Validate(ErrCalculateRevenueQueryIsNotConstructed)
}

// CalculateRevenueQueryResponse carries the revenue. It is a plain decimal
// rather than kernel.Money because a sum over many orders may exceed the
// per-order storage limit.
type CalculateRevenueQueryResponse struct {
	Revenue    decimal.Decimal
	PaidOrders int64
}

// String formats the revenue with two fraction digits.
func (r CalculateRevenueQueryResponse) String() string {
	return r.Revenue.StringFixed(2)
}
