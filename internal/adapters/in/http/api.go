package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Item is a dish in API payloads. Prices are decimal strings such as "3.50".
type Item struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Order is the API representation of an order.
type Order struct {
	ID          int64  `json:"id"`
	TableNumber int    `json:"table_number"`
	Items       []Item `json:"items"`
	TotalPrice  string `json:"total_price"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Label       string `json:"label"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	TableNumber int    `json:"table_number"`
	Items       []Item `json:"items"`
}

// CreatedOrder is the body returned after creating an order.
type CreatedOrder struct {
	ID int64 `json:"id"`
}

// StatusUpdate is the body of PUT /api/v1/orders/{id}/status.
type StatusUpdate struct {
	Status string `json:"status"`
}

// Revenue is the body of GET /api/v1/revenue.
type Revenue struct {
	Revenue    string `json:"revenue"`
	PaidOrders int64  `json:"paid_orders"`
}

// ListOrdersParams are the query parameters of GET /api/v1/orders.
type ListOrdersParams struct {
	Q      *string
	Status *string
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context) error {
	var params ListOrdersParams
	if err := runtime.BindQueryParameter("form", true, false, "q", c.QueryParams(), &params.Q); err != nil {
		return badRequest("invalid format for parameter q: %v", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &params.Status); err != nil {
		return badRequest("invalid format for parameter status: %v", err)
	}

	query := queries.NewListOrdersQuery(deref(params.Q), deref(params.Status))
	orders, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}

	return c.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest("invalid request body")
	}

	lines := make([]commands.ItemLine, len(body.Items))
	for i, item := range body.Items {
		lines[i] = commands.ItemLine{Name: item.Name, Price: item.Price}
	}

	cmd, err := commands.NewCreateOrderCommand(body.TableNumber, lines)
	if err != nil {
		return err
	}

	id, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, CreatedOrder{ID: id})
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	o, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrder(o))
}

// DeleteOrderByID handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrderByID(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PUT /api/v1/orders/{id}/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := bindOrderID(c)
	if err != nil {
		return err
	}

	var body StatusUpdate
	if err = c.Bind(&body); err != nil {
		return badRequest("invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, body.Status)
	if err != nil {
		return err
	}

	if err = s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetRevenue handles GET /api/v1/revenue.
func (s *Server) GetRevenue(c echo.Context) error {
	resp, err := s.calculateRevenueHandler.Handle(c.Request().Context(), queries.NewCalculateRevenueQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Revenue{Revenue: resp.String(), PaidOrders: resp.PaidOrders})
}

func bindOrderID(c echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, badRequest("invalid format for parameter id: %v", err)
	}
	return id, nil
}

func toOrder(o queries.OrderResponse) Order {
	items := make([]Item, len(o.Items))
	for i, item := range o.Items {
		items[i] = Item{Name: item.Name, Price: item.Price.String()}
	}

	return Order{
		ID:          o.ID,
		TableNumber: o.TableNumber,
		Items:       items,
		TotalPrice:  o.Total.String(),
		Status:      o.Status.String(),
		StatusLabel: o.Status.Label(),
		Label:       o.Label,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
