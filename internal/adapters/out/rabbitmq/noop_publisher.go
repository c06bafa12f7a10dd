package rabbitmq

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct{}

// NewNoopPublisher returns a publisher that accepts and discards every event.
func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

// PublishStatusChanged discards the event and always succeeds.
func (NoopPublisher) PublishStatusChanged(context.Context, order.StatusChangedEvent) error {
	return nil
}

// Close is a no-op.
func (NoopPublisher) Close() error {
	return nil
}
