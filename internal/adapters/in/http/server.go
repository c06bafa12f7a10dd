// Package http exposes the restaurant use cases over HTTP: server-rendered
// pages for staff and a JSON API described by an OpenAPI document.
package http

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
)

// Use case contracts the server depends on. The application handlers in
// usecases/commands and usecases/queries implement them; tests use mocks.
type (
	// CreateOrderHandler opens an order and returns the id assigned by the store.
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int64, error)
	}

	// DeleteOrderHandler removes an order; unknown ids yield errs.ObjectNotFoundError.
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	// UpdateOrderStatusHandler moves an order to another status. A missing order
	// is reported before an unknown status code.
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}

	// ListOrdersHandler returns orders matching the page filter, ordered by id.
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderResponse, error)
	}

	// GetOrderHandler returns a single order or errs.ObjectNotFoundError.
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
	}

	// CalculateRevenueHandler sums the totals of paid orders.
	CalculateRevenueHandler interface {
		Handle(ctx context.Context, query queries.CalculateRevenueQuery) (queries.CalculateRevenueQueryResponse, error)
	}
)

// Server handles HTTP requests by delegating to application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       CreateOrderHandler
	deleteOrderHandler       DeleteOrderHandler
	updateOrderStatusHandler UpdateOrderStatusHandler

	// Query handlers
	listOrdersHandler       ListOrdersHandler
	getOrderHandler         GetOrderHandler
	calculateRevenueHandler CalculateRevenueHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderHandler,
	deleteOrderHandler DeleteOrderHandler,
	updateOrderStatusHandler UpdateOrderStatusHandler,
	listOrdersHandler ListOrdersHandler,
	getOrderHandler GetOrderHandler,
	calculateRevenueHandler CalculateRevenueHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		deleteOrderHandler:       deleteOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		calculateRevenueHandler:  calculateRevenueHandler,
		logger:                   logger,
	}
}
