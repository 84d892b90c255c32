package commands

import (
	"context"
	"errors"

	"packnow/internal/core/domain/model/order"
	"packnow/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles the business logic for moving an
// order through its packing workflow. The order's state machine rejects
// transitions that skip steps or touch a finished order.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status
// transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Returns ErrNoOrderFound if the order does not exist and the domain's
// validation error when the transition is not allowed from the order's
// current status.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	updatedOrder, err := ordersRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	switch command.Status() {
	case order.OnTheWay:
		err = updatedOrder.MarkOnTheWay()
	case order.Packed:
		err = updatedOrder.MarkPacked()
	case order.Completed:
		err = updatedOrder.Complete()
	}
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, updatedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
