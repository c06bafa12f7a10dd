// Package queries contains read-only operations over orders. Query handlers
// read straight from the database through GORM instead of going through
// repositories and units of work.
package queries

import (
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderResponse is the read model of an order shown in lists and the API.
type OrderResponse struct {
	ID          int64
	TableNumber int
	Items       []ItemResponse
	Total       kernel.Money
	Status      order.Status
	Label       string
}

// ItemResponse is a dish on an OrderResponse.
type ItemResponse struct {
	Name  string
	Price kernel.Money
}

// orderRow mirrors the columns of the orders table.
type orderRow struct {
	ID          int64
	TableNumber int
	Items       []itemRow `gorm:"serializer:json"`
	TotalPrice  decimal.Decimal
	Status      string
}

type itemRow struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

const orderColumns = "id, table_number, items, total_price, status"

// toResponse rebuilds the aggregate so the label and total come from the
// domain rather than being recomputed here.
func toResponse(row orderRow) (OrderResponse, error) {
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return OrderResponse{}, fmt.Errorf("order %d: %w", row.ID, err)
	}

	items := make([]order.Item, 0, len(row.Items))
	for _, r := range row.Items {
		price, priceErr := kernel.NewMoney(r.Price)
		if priceErr != nil {
			return OrderResponse{}, fmt.Errorf("order %d: %w", row.ID, priceErr)
		}
		item, itemErr := order.NewItem(r.Name, price)
		if itemErr != nil {
			return OrderResponse{}, fmt.Errorf("order %d: %w", row.ID, itemErr)
		}
		items = append(items, item)
	}

	o, err := order.RestoreOrder(row.ID, row.TableNumber, items, status)
	if err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:          o.ID(),
		TableNumber: o.TableNumber(),
		Items:       make([]ItemResponse, 0, len(items)),
		Total:       o.Total(),
		Status:      o.Status(),
		Label:       o.String(),
	}
	for _, item := range o.Items() {
		resp.Items = append(resp.Items, ItemResponse{Name: item.Name(), Price: item.Price()})
	}

	return resp, nil
}
