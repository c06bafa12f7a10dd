package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	e *echo.Echo

	create  *MockCreateOrderHandler
	del     *MockDeleteOrderHandler
	update  *MockUpdateOrderStatusHandler
	list    *MockListOrdersHandler
	get     *MockGetOrderHandler
	revenue *MockCalculateRevenueHandler
}

func (suite *ServerTestSuite) SetupTest() {
	suite.create = new(MockCreateOrderHandler)
	suite.del = new(MockDeleteOrderHandler)
	suite.update = new(MockUpdateOrderStatusHandler)
	suite.list = new(MockListOrdersHandler)
	suite.get = new(MockGetOrderHandler)
	suite.revenue = new(MockCalculateRevenueHandler)

	server := httpadapter.NewServer(
		suite.create, suite.del, suite.update,
		suite.list, suite.get, suite.revenue,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	e, err := httpadapter.NewEcho(server)
	suite.Require().NoError(err)
	suite.e = e
}

func (suite *ServerTestSuite) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	return suite.do(http.MethodPost, target, strings.NewReader(form.Encode()), echo.MIMEApplicationForm)
}

func (suite *ServerTestSuite) decodeError(rec *httptest.ResponseRecorder) httpadapter.Error {
	var body httpadapter.Error
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (suite *ServerTestSuite) TestHealth() {
	rec := suite.do(http.MethodGet, "/health", nil, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Healthy", rec.Body.String())
	suite.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

func (suite *ServerTestSuite) TestRootRedirectsToOrders() {
	rec := suite.do(http.MethodGet, "/", nil, "")

	suite.Equal(http.StatusFound, rec.Code)
	suite.Equal("/orders", rec.Header().Get(echo.HeaderLocation))
}

func (suite *ServerTestSuite) TestOrdersPage_RendersFilteredOrders() {
	suite.list.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		status, ok := q.Status()
		return q.Search() == "5" && ok && status == order.Waiting
	})).Return([]queries.OrderResponse{sampleOrder(3, 5, order.Waiting)}, nil).Once()

	rec := suite.do(http.MethodGet, "/orders?q=5&status="+url.QueryEscape("Ожидание"), nil, "")

	suite.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	suite.Contains(body, "Order #3 (Table 5)")
	suite.Contains(body, "Soup: 3.50")
	suite.Contains(body, "4.75")
	suite.Contains(body, `action="/orders/3/status/ready"`)
	suite.Contains(body, `action="/orders/3/delete"`)
	suite.Contains(body, `<option value="Ожидание" selected>`)
	suite.Contains(body, "Оплачено")
	suite.list.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestOrdersPage_UnknownStatusIsIgnored() {
	suite.list.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		_, ok := q.Status()
		return !ok && q.SelectedLabel() == "Отменено"
	})).Return([]queries.OrderResponse{}, nil).Once()

	rec := suite.do(http.MethodGet, "/orders?status="+url.QueryEscape("Отменено"), nil, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "Заказов нет")
	suite.list.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestOrdersPage_StoreFailure_Returns500() {
	suite.list.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	rec := suite.do(http.MethodGet, "/orders", nil, "")

	suite.Equal(http.StatusInternalServerError, rec.Code)
	suite.NotContains(rec.Body.String(), "connection reset")
}

func (suite *ServerTestSuite) TestAddOrderForm() {
	rec := suite.do(http.MethodGet, "/orders/add", nil, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `name="items[]"`)
	suite.Contains(rec.Body.String(), `name="prices[]"`)
}

func (suite *ServerTestSuite) TestAddOrder_CreatesAndRedirects() {
	suite.create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		items := cmd.Items()
		return cmd.TableNumber() == 5 && len(items) == 2 &&
			items[0].Name() == "Soup" && items[0].Price().String() == "3.50" &&
			items[1].Name() == "Bread" && items[1].Price().String() == "1.25"
	})).Return(int64(1), nil).Once()

	rec := suite.postForm("/orders/add", url.Values{
		"table_number": {"5"},
		"items[]":      {"Soup", "Bread"},
		"prices[]":     {"3.50", "1.25"},
	})

	suite.Equal(http.StatusFound, rec.Code)
	suite.Equal("/orders", rec.Header().Get(echo.HeaderLocation))
	suite.create.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestAddOrder_PairsItemsWithPrices() {
	testCases := []struct {
		name   string
		names  []string
		prices []string
	}{
		{name: "more items than prices", names: []string{"Soup", "Bread"}, prices: []string{"3.50"}},
		{name: "more prices than items", names: []string{"Soup"}, prices: []string{"3.50", "1.25"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
				items := cmd.Items()
				return len(items) == 1 && items[0].Name() == "Soup" && items[0].Price().String() == "3.50"
			})).Return(int64(1), nil).Once()

			rec := suite.postForm("/orders/add", url.Values{
				"table_number": {"5"},
				"items[]":      tc.names,
				"prices[]":     tc.prices,
			})

			suite.Equal(http.StatusFound, rec.Code)
			suite.Equal("/orders", rec.Header().Get(echo.HeaderLocation))
			suite.create.AssertExpectations(suite.T())
		})
	}
}

func (suite *ServerTestSuite) TestAddOrder_InvalidForms() {
	testCases := []struct {
		name    string
		form    url.Values
		message string
	}{
		{
			name:    "missing table number",
			form:    url.Values{"items[]": {"Soup"}, "prices[]": {"3.50"}},
			message: "required",
		},
		{
			name:    "missing items",
			form:    url.Values{"table_number": {"5"}, "prices[]": {"3.50"}},
			message: "required",
		},
		{
			name:    "missing prices",
			form:    url.Values{"table_number": {"5"}, "items[]": {"Soup"}},
			message: "required",
		},
		{
			name:    "table is not a number",
			form:    url.Values{"table_number": {"five"}, "items[]": {"Soup"}, "prices[]": {"3.50"}},
			message: "is not a number",
		},
		{
			name:    "price is not a number",
			form:    url.Values{"table_number": {"5"}, "items[]": {"Soup"}, "prices[]": {"cheap"}},
			message: "is not a decimal",
		},
		{
			name:    "table is not positive",
			form:    url.Values{"table_number": {"0"}, "items[]": {"Soup"}, "prices[]": {"3.50"}},
			message: "table number is invalid",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			rec := suite.postForm("/orders/add", tc.form)

			suite.Equal(http.StatusBadRequest, rec.Code)
			body := suite.decodeError(rec)
			suite.Equal(http.StatusBadRequest, body.Code)
			suite.Contains(body.Message, tc.message)
		})
	}

	suite.create.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestDeleteOrder() {
	suite.Run("existing order", func() {
		suite.del.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteOrderCommand) bool {
			return cmd.OrderID() == 7
		})).Return(nil).Once()

		rec := suite.do(http.MethodPost, "/orders/7/delete", nil, "")

		suite.Equal(http.StatusFound, rec.Code)
		suite.Equal("/orders", rec.Header().Get(echo.HeaderLocation))
	})

	suite.Run("unknown order", func() {
		suite.del.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteOrderCommand) bool {
			return cmd.OrderID() == 99
		})).Return(errs.NewObjectNotFoundError("order", int64(99))).Once()

		rec := suite.do(http.MethodPost, "/orders/99/delete", nil, "")

		suite.Equal(http.StatusNotFound, rec.Code)
		suite.Equal(http.StatusNotFound, suite.decodeError(rec).Code)
	})

	suite.Run("malformed id", func() {
		rec := suite.do(http.MethodPost, "/orders/abc/delete", nil, "")

		suite.Equal(http.StatusBadRequest, rec.Code)
	})

	suite.del.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestUpdateOrderStatus() {
	suite.Run("valid status", func() {
		suite.update.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
			return cmd.OrderID() == 4 && cmd.StatusCode() == "paid"
		})).Return(nil).Once()

		rec := suite.do(http.MethodPost, "/orders/4/status/paid", nil, "")

		suite.Equal(http.StatusFound, rec.Code)
		suite.Equal("/orders", rec.Header().Get(echo.HeaderLocation))
	})

	suite.Run("unknown status code", func() {
		_, parseErr := order.ParseStatus("cancelled")
		suite.update.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
			return cmd.OrderID() == 4 && cmd.StatusCode() == "cancelled"
		})).Return(parseErr).Once()

		rec := suite.do(http.MethodPost, "/orders/4/status/cancelled", nil, "")

		suite.Equal(http.StatusBadRequest, rec.Code)
		suite.Contains(suite.decodeError(rec).Message, "cancelled")
	})

	suite.Run("unknown order with unknown status code", func() {
		suite.update.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
			return cmd.OrderID() == 999 && cmd.StatusCode() == "bogus"
		})).Return(errs.NewObjectNotFoundError("order", int64(999))).Once()

		rec := suite.do(http.MethodPost, "/orders/999/status/bogus", nil, "")

		suite.Equal(http.StatusNotFound, rec.Code)
	})

	suite.Run("unknown order", func() {
		suite.update.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
			return cmd.OrderID() == 404
		})).Return(errs.NewObjectNotFoundError("order", int64(404))).Once()

		rec := suite.do(http.MethodPost, "/orders/404/status/ready", nil, "")

		suite.Equal(http.StatusNotFound, rec.Code)
	})

	suite.update.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestRevenuePage() {
	suite.revenue.On("Handle", mock.Anything, mock.Anything).Return(queries.CalculateRevenueQueryResponse{
		Revenue:    decimal.RequireFromString("12.5"),
		PaidOrders: 2,
	}, nil).Once()

	rec := suite.do(http.MethodGet, "/revenue", nil, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "12.50")
}

func (suite *ServerTestSuite) TestAPI_ListOrders() {
	suite.list.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		status, ok := q.SearchStatus()
		return ok && status == order.Ready
	})).Return([]queries.OrderResponse{sampleOrder(1, 2, order.Ready)}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/orders?q="+url.QueryEscape("Готово"), nil, "")

	suite.Require().Equal(http.StatusOK, rec.Code)
	var body []httpadapter.Order
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal(httpadapter.Order{
		ID:          1,
		TableNumber: 2,
		Items: []httpadapter.Item{
			{Name: "Soup", Price: "3.50"},
			{Name: "Bread", Price: "1.25"},
		},
		TotalPrice:  "4.75",
		Status:      "ready",
		StatusLabel: "Готово",
		Label:       "Order #1 (Table 2)",
	}, body[0])
}

func (suite *ServerTestSuite) TestAPI_CreateOrder() {
	suite.create.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.TableNumber() == 5 && len(cmd.Items()) == 1
	})).Return(int64(12), nil).Once()

	rec := suite.do(http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"table_number":5,"items":[{"name":"Soup","price":"3.50"}]}`),
		echo.MIMEApplicationJSON)

	suite.Equal(http.StatusCreated, rec.Code)
	suite.JSONEq(`{"id":12}`, rec.Body.String())
}

func (suite *ServerTestSuite) TestAPI_CreateOrder_RejectedByContract() {
	bodies := map[string]string{
		"no items":          `{"table_number":5,"items":[]}`,
		"table below one":   `{"table_number":0,"items":[{"name":"Soup","price":"3.50"}]}`,
		"price not decimal": `{"table_number":5,"items":[{"name":"Soup","price":"cheap"}]}`,
		"missing table":     `{"items":[{"name":"Soup","price":"3.50"}]}`,
	}

	for name, body := range bodies {
		suite.Run(name, func() {
			rec := suite.do(http.MethodPost, "/api/v1/orders", strings.NewReader(body), echo.MIMEApplicationJSON)

			suite.Equal(http.StatusBadRequest, rec.Code)
			suite.Equal(http.StatusBadRequest, suite.decodeError(rec).Code)
		})
	}

	suite.create.AssertNotCalled(suite.T(), "Handle", mock.Anything, mock.Anything)
}

func (suite *ServerTestSuite) TestAPI_GetOrder() {
	suite.get.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
		return q.OrderID() == 3
	})).Return(sampleOrder(3, 5, order.Paid), nil).Once()
	suite.get.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
		return q.OrderID() == 8
	})).Return(queries.OrderResponse{}, errs.NewObjectNotFoundError("order", int64(8))).Once()

	rec := suite.do(http.MethodGet, "/api/v1/orders/3", nil, "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), `"status":"paid"`)

	rec = suite.do(http.MethodGet, "/api/v1/orders/8", nil, "")
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Contains(suite.decodeError(rec).Message, "8")

	rec = suite.do(http.MethodGet, "/api/v1/orders/abc", nil, "")
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *ServerTestSuite) TestAPI_DeleteOrder() {
	suite.del.On("Handle", mock.Anything, mock.Anything).Return(nil).Once()

	rec := suite.do(http.MethodDelete, "/api/v1/orders/3", nil, "")

	suite.Equal(http.StatusNoContent, rec.Code)
	suite.del.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestAPI_ChangeOrderStatus() {
	suite.update.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderStatusCommand) bool {
		return cmd.OrderID() == 3 && cmd.StatusCode() == "ready"
	})).Return(nil).Once()

	rec := suite.do(http.MethodPut, "/api/v1/orders/3/status",
		strings.NewReader(`{"status":"ready"}`), echo.MIMEApplicationJSON)
	suite.Equal(http.StatusNoContent, rec.Code)

	rec = suite.do(http.MethodPut, "/api/v1/orders/3/status",
		strings.NewReader(`{"status":"cancelled"}`), echo.MIMEApplicationJSON)
	suite.Equal(http.StatusBadRequest, rec.Code)

	suite.update.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) TestAPI_GetRevenue() {
	suite.revenue.On("Handle", mock.Anything, mock.Anything).Return(queries.CalculateRevenueQueryResponse{
		Revenue: decimal.Zero,
	}, nil).Once()

	rec := suite.do(http.MethodGet, "/api/v1/revenue", nil, "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`{"revenue":"0.00","paid_orders":0}`, rec.Body.String())
}

func (suite *ServerTestSuite) TestAPI_UnknownRoute() {
	rec := suite.do(http.MethodGet, "/api/v1/tables", nil, "")

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *ServerTestSuite) TestOpenAPIDocumentAndSwagger() {
	rec := suite.do(http.MethodGet, "/api/openapi.yaml", nil, "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "/api/v1/orders/{id}/status")

	rec = suite.do(http.MethodGet, "/swagger/index.html", nil, "")
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodGet, "/swagger/doc.json", nil, "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "/api/v1/revenue")
}

func sampleOrder(id int64, table int, status order.Status) queries.OrderResponse {
	soup, _ := kernel.MoneyFromString("3.50")
	bread, _ := kernel.MoneyFromString("1.25")
	total, _ := kernel.MoneyFromString("4.75")

	o, _ := order.RestoreOrder(id, table, nil, status)

	return queries.OrderResponse{
		ID:          id,
		TableNumber: table,
		Items: []queries.ItemResponse{
			{Name: "Soup", Price: soup},
			{Name: "Bread", Price: bread},
		},
		Total:  total,
		Status: status,
		Label:  o.String(),
	}
}

func TestLoadOpenAPI(t *testing.T) {
	doc, err := httpadapter.LoadOpenAPI()

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v1/orders"))
	assert.NotNil(t, doc.Paths.Find("/api/v1/revenue"))
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
