package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves an order to another status.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(12, "paid")
//	if err != nil {
//	    // only a non-positive id fails here
//	}
//
// The status code is checked by the handler once the order is known to exist,
// so a missing order is reported before a bad code.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    int64
	statusCode string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates the id and keeps the requested status
// code (waiting, ready or paid) as given.
func NewUpdateOrderStatusCommand(orderID int64, statusCode string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		statusCode: statusCode,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the id of the order to update.
func (c UpdateOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

// StatusCode returns the requested status code, not yet validated.
func (c UpdateOrderStatusCommand) StatusCode() string {
	return c.statusCode
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order id is invalid",
			fmt.Errorf("%d is not greater than 0", orderID),
		)
	}

	c.orderID = orderID
	return nil
}
