package http

import (
	"net/http"
	"strconv"
	"strings"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const ordersPath = "/orders"

type ordersListView struct {
	Orders         []queries.OrderResponse
	Query          string
	Statuses       []string
	SelectedStatus string
	Transitions    []order.Status
}

type revenueView struct {
	Revenue    string
	PaidOrders int64
}

// OrdersPage handles GET /orders - the filterable order list.
func (s *Server) OrdersPage(c echo.Context) error {
	query := queries.NewListOrdersQuery(c.QueryParam("q"), c.QueryParam("status"))

	orders, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "orders_list.html", ordersListView{
		Orders:         orders,
		Query:          query.Search(),
		Statuses:       order.Labels(),
		SelectedStatus: query.SelectedLabel(),
		Transitions:    order.Statuses(),
	})
}

// AddOrderForm handles GET /orders/add.
func (s *Server) AddOrderForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add_order.html", nil)
}

// AddOrder handles POST /orders/add. The form carries table_number and the
// parallel lists items[] and prices[]. Names and prices are paired by position;
// entries without a counterpart in the other list are dropped.
func (s *Server) AddOrder(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return badRequest("malformed form: %v", err)
	}

	rawTable := strings.TrimSpace(form.Get("table_number"))
	names := form["items[]"]
	prices := form["prices[]"]

	if rawTable == "" || len(names) == 0 || len(prices) == 0 {
		return badRequest("table_number, items[] and prices[] are required")
	}

	tableNumber, err := strconv.Atoi(rawTable)
	if err != nil {
		return badRequest("table_number %q is not a number", rawTable)
	}

	n := min(len(names), len(prices))
	lines := make([]commands.ItemLine, 0, n)
	for i := range n {
		lines = append(lines, commands.ItemLine{Name: names[i], Price: strings.TrimSpace(prices[i])})
	}

	cmd, err := commands.NewCreateOrderCommand(tableNumber, lines)
	if err != nil {
		return err
	}

	if _, err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, ordersPath)
}

// DeleteOrder handles POST /orders/:id/delete.
func (s *Server) DeleteOrder(c echo.Context) error {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil {
		return badRequest("order id must be an integer")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, ordersPath)
}

// UpdateOrderStatus handles POST /orders/:id/status/:new_status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	var (
		id        int64
		newStatus string
	)
	if err := echo.PathParamsBinder(c).
		MustInt64("id", &id).
		MustString("new_status", &newStatus).
		BindError(); err != nil {
		return badRequest("order id must be an integer")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, newStatus)
	if err != nil {
		return err
	}

	if err = s.updateOrderStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, ordersPath)
}

// RevenuePage handles GET /revenue.
func (s *Server) RevenuePage(c echo.Context) error {
	resp, err := s.calculateRevenueHandler.Handle(c.Request().Context(), queries.NewCalculateRevenueQuery())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "revenue.html", revenueView{
		Revenue:    resp.String(),
		PaidOrders: resp.PaidOrders,
	})
}
