package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when the store tries to assign an id twice.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order is the aggregate root of the restaurant domain: what a table asked for,
// how much it costs and how far along it is.
//
// Order follows these invariants:
//   - Table number is positive
//   - Total always equals the sum of item prices
//   - Status is one of Waiting, Ready, Paid
//   - Can only be created through NewOrder or RestoreOrder
//
// The id is zero until the store assigns one on insert.
type Order struct {
	// id is assigned by the store; zero means not yet persisted
	id int64

	// tableNumber identifies the physical table
	tableNumber int

	// items keeps dishes in the order they were added
	items []Item

	// total is derived from items and never set directly
	total kernel.Money

	status Status

	// events raised since the aggregate was last saved
	events []StatusChangedEvent

	isConstructed bool
}

// NewOrder creates a new order for a table. The order starts in Waiting and
// its total is the sum of the item prices.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("3.50")
//	soup, _ := order.NewItem("Soup", price)
//	o, err := order.NewOrder(5, []order.Item{soup})
func NewOrder(tableNumber int, items []Item) (*Order, error) {
	o := &Order{
		status:        Waiting,
		isConstructed: true,
	}

	itemsErr := o.setItems(items)
	if itemsErr == nil && len(items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("items")
	}

	if err := errors.Join(
		o.setTableNumber(tableNumber),
		itemsErr,
	); err != nil {
		return nil, err
	}

	if err := o.RecalculateTotal(); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. Unlike NewOrder it
// accepts any valid status and an empty item list; the total is always
// recomputed from the items rather than trusted from storage.
func RestoreOrder(id int64, tableNumber int, items []Item, status Status) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := o.RecalculateTotal(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two persisted orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned identifier, or zero for an unsaved order.
func (o *Order) ID() int64 {
	return o.id
}

// TableNumber returns the table the order belongs to.
func (o *Order) TableNumber() int {
	return o.tableNumber
}

// Items returns a copy of the order's dishes in insertion order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the sum of item prices as of the last recalculation.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// String renders the label shown to staff, e.g. "Order #12 (Table 5)".
func (o *Order) String() string {
	return fmt.Sprintf("Order #%d (Table %d)", o.id, o.tableNumber)
}

// AssignID records the identifier generated by the store. It can be called once.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	return o.setID(id)
}

// ChangeStatus moves the order to the given status. A StatusChangedEvent is
// recorded when the status actually differs; the total is recomputed either way.
// On error the order is left unchanged.
func (o *Order) ChangeStatus(status Status) error {
	newStatus, err := o.status.ChangeTo(status)
	if err != nil {
		return err
	}

	if err = o.RecalculateTotal(); err != nil {
		return err
	}

	if newStatus != o.status {
		o.events = append(o.events, StatusChangedEvent{
			OrderID:     o.id,
			TableNumber: o.tableNumber,
			From:        o.status,
			To:          newStatus,
			OccurredAt:  time.Now().UTC(),
		})
	}

	o.status = newStatus
	return nil
}

// RecalculateTotal overwrites the total with the sum of the current items.
// An order without items totals zero. A sum above kernel.MaxMoney does not fit
// the total_price column: it is reported as out of range and the previous
// total is kept.
func (o *Order) RecalculateTotal() error {
	prices := make([]kernel.Money, 0, len(o.items))
	for _, item := range o.items {
		prices = append(prices, item.Price())
	}

	total, err := kernel.SumMoney(prices...)
	if err != nil {
		return fmt.Errorf("order total: %w", err)
	}
	o.total = total
	return nil
}

// DomainEvents returns the events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChangedEvent {
	events := make([]StatusChangedEvent, len(o.events))
	copy(events, o.events)
	return events
}

// ClearDomainEvents drops recorded events once they have been dispatched.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setTableNumber(tableNumber int) error {
	if tableNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"table number is invalid",
			fmt.Errorf("%d is not greater than 0", tableNumber),
		)
	}
	o.tableNumber = tableNumber
	return nil
}

func (o *Order) setItems(items []Item) error {
	validated := make([]Item, 0, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		validated = append(validated, item)
	}
	o.items = validated
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
