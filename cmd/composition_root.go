package cmd

import (
	"io"
	"log/slog"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

// EventPublisher is an order event publisher that holds a broker connection.
type EventPublisher interface {
	ports.OrderEventPublisher
	io.Closer
}

// CompositionRoot wires adapters into use case handlers. It owns the shared
// unit of work factory so every command handler publishes through the same
// event publisher.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	publisher  EventPublisher
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the root over an opened database and a publisher.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, publisher EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		publisher:  publisher,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCalculateRevenueQueryHandler() queries.CalculateRevenueQueryHandler {
	return queries.NewCalculateRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateCalculateRevenueQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCalculateRevenueQueryHandler(), c.configs.RevenueReportCron, c.logger)
}

// NewEventPublisher connects to RabbitMQ, or returns a publisher that drops
// events when no broker URL is configured.
func NewEventPublisher(configs Config) (EventPublisher, error) {
	if configs.RabbitMQURL == "" {
		return rabbitmq.NewNoopPublisher(), nil
	}
	publisher, err := rabbitmq.Dial(configs.RabbitMQURL, configs.RabbitMQExchange)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

// FuncOrderUoWFactory adapts a function to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
