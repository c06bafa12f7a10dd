package ports

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order domain events to other systems
// (kitchen displays, notifications) once they are committed.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChangedEvent) error
}
