// Package ports defines the contracts between the restaurant core and its adapters.
// Interfaces here are implemented by infrastructure (PostgreSQL, RabbitMQ) and
// consumed by application use cases, keeping the core free of driver imports.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns the store-generated id to it.
	// The total is recomputed from the items before writing.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, recomputing its total.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order by id.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Delete(ctx context.Context, id int64) error
}
