// Package orderrepo maps order aggregates to the orders table and implements
// ports.OrderRepository on top of GORM.
package orderrepo

import (
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents a row of the orders table.
// Items are kept as a JSON array in a jsonb column; the status is stored as its code.
type OrderDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	TableNumber int             `gorm:"not null;index"`
	Items       []ItemDTO       `gorm:"type:jsonb;not null;serializer:json"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the items JSON array. Prices are decimal strings
// with two fraction digits so no precision is lost through JSON numbers.
type ItemDTO struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemDTO{
			Name:  item.Name(),
			Price: item.Price().String(),
		})
	}

	return OrderDTO{
		ID:          o.ID(),
		TableNumber: o.TableNumber(),
		Items:       items,
		TotalPrice:  o.Total().Amount(),
		Status:      o.Status().String(),
	}
}

// toDomain rebuilds the aggregate with RestoreOrder. The stored total is not
// trusted; the aggregate recomputes it from the items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for i, itemDTO := range dto.Items {
		price, priceErr := kernel.MoneyFromString(itemDTO.Price)
		if priceErr != nil {
			return nil, fmt.Errorf("item %d: %w", i, priceErr)
		}

		item, itemErr := order.NewItem(itemDTO.Name, price)
		if itemErr != nil {
			return nil, fmt.Errorf("item %d: %w", i, itemErr)
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, dto.TableNumber, items, status)
}
