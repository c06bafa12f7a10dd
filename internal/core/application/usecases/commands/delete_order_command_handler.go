package commands

import "context"

// DeleteOrderCommandHandler removes orders. Deleting an unknown id yields
// errs.ObjectNotFoundError from the repository.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order removal.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) *DeleteOrderCommandHandler {
	return &DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the order in its own transaction.
//
// Parameters:
//   - ctx: request context, passed to the unit of work
//   - cmd: a command built by NewDeleteOrderCommand
//
// Returns errs.ObjectNotFoundError when no order has the id; nothing is committed then.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
