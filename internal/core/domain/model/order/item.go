package order

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single dish on an order. Items are immutable values; an order
// keeps them in the order they were added.
type Item struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Money
	guard guard.ConstructorGuard
}

// NewItem creates a dish with a non-empty name and a valid price.
// Surrounding whitespace is trimmed from the name.
func NewItem(name string, price kernel.Money) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate reports whether the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the dish name.
func (i Item) Name() string {
	return i.name
}

// Price returns the dish price.
func (i Item) Price() kernel.Money {
	return i.price
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}
