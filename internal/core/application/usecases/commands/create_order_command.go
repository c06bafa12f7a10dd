package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemLine is a dish as submitted by staff: a name and a price in decimal text.
type ItemLine struct {
	Name  string
	Price string
}

// CreateOrderCommand represents a request to open a new order for a table.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(5, []ItemLine{
//	    {Name: "Soup", Price: "3.50"},
//	    {Name: "Bread", Price: "1.25"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	tableNumber int
	items       []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the table number and parses every item line.
// All problems are reported together.
func NewCreateOrderCommand(tableNumber int, lines []ItemLine) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableNumber(tableNumber),
		cmd.setItems(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// TableNumber returns the table the order is for.
func (c CreateOrderCommand) TableNumber() int {
	return c.tableNumber
}

// Items returns the parsed dishes in submission order.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setTableNumber(tableNumber int) error {
	if tableNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"table number is invalid",
			fmt.Errorf("%d is not greater than 0", tableNumber),
		)
	}

	c.tableNumber = tableNumber
	return nil
}

func (c *CreateOrderCommand) setItems(lines []ItemLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(lines))
	var lineErrs []error
	for i, line := range lines {
		price, err := kernel.MoneyFromString(line.Price)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("item %d price: %w", i+1, err))
			continue
		}

		item, err := order.NewItem(line.Name, price)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("item %d: %w", i+1, err))
			continue
		}
		items = append(items, item)
	}

	if len(lineErrs) > 0 {
		return errors.Join(lineErrs...)
	}

	c.items = items
	return nil
}
