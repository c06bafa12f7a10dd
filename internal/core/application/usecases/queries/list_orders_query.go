package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery describes the order list filter staff apply on the orders page.
//
// The status filter is a human-readable label ("Готово"); labels that do not
// match a known status are ignored rather than rejected. The free-text search
// matches table numbers as a case-insensitive substring, or, when the text is
// exactly a status label, orders in that status as well.
//
// Example:
//
//	query := NewListOrdersQuery("1", "Ожидание")
//	// waiting orders at tables 1, 10, 11, 21...
type ListOrdersQuery struct {
	search        string
	selectedLabel string
	status        order.Status
	searchStatus  order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds the filter from raw request parameters.
// Both arguments may be empty. The search text is used as given, so "  "
// only matches table numbers containing two spaces, which is none.
func NewListOrdersQuery(search, statusLabel string) ListOrdersQuery {
	q := ListOrdersQuery{
		search:        search,
		selectedLabel: statusLabel,
		guard:         guard.NewConstructorGuard(),
	}

	if s, ok := order.StatusFromLabel(statusLabel); ok {
		q.status = s
	}
	if s, ok := order.StatusFromLabel(q.search); ok {
		q.searchStatus = s
	}

	return q
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Search returns the free-text search, possibly empty.
func (q ListOrdersQuery) Search() string {
	return q.search
}

// SelectedLabel returns the status label exactly as requested, even when unknown.
func (q ListOrdersQuery) SelectedLabel() string {
	return q.selectedLabel
}

// Status returns the status to restrict to; ok is false when no known label was selected.
func (q ListOrdersQuery) Status() (order.Status, bool) {
	return q.status, q.status != order.Unknown
}

// SearchStatus returns the status named by the search text; ok is false when
// the text is not a status label.
func (q ListOrdersQuery) SearchStatus() (order.Status, bool) {
	return q.searchStatus, q.searchStatus != order.Unknown
}
