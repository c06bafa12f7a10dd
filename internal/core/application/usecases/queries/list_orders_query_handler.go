package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler returns orders matching a ListOrdersQuery, ordered by id.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewListOrdersQuery(r.URL.Query().Get("q"), ""))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order lists.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the filtered list query.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders").Select(orderColumns)

	if status, ok := query.Status(); ok {
		tx = tx.Where("status = ?", status.String())
	}

	if search := query.Search(); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		if status, ok := query.SearchStatus(); ok {
			tx = tx.Where("(CAST(table_number AS TEXT) ILIKE ? OR status = ?)", pattern, status.String())
		} else {
			tx = tx.Where("CAST(table_number AS TEXT) ILIKE ?", pattern)
		}
	}

	var rows []orderRow
	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		resp, err := toResponse(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}

	return orders, nil
}

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
