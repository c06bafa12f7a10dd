package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler changes the status of an existing order.
// Saving recomputes the order total, and the resulting StatusChangedEvent is
// published by the unit of work after commit.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(12, "ready")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, errs.ErrObjectNotFound) {
//	        // no such order
//	    }
//	    if errors.Is(err, errs.ErrValueIsInvalid) {
//	        // the order exists but the code is not waiting, ready or paid
//	    }
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) *UpdateOrderStatusCommandHandler {
	return &UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, changes its status and saves it in one transaction.
// The status code is parsed after the lookup: an unknown order yields
// ErrObjectNotFound whatever the code.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	status, err := order.ParseStatus(cmd.StatusCode())
	if err != nil {
		return err
	}

	if err = o.ChangeStatus(status); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
