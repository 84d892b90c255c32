package commands

import (
	"context"
	"errors"

	"packnow/internal/pkg/errs"
)

// CancelOrderCommandHandler handles the business logic for order
// cancellation. Cancels the order and, when a packer was already assigned,
// returns the reserved materials to their inventory and restores their
// availability when stock is no longer low.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, 10)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoOrderFound) {
//	    log.Println("Order does not exist")
//	}
type CancelOrderCommandHandler struct {
	uowFactory        UoWFactory
	lowStockThreshold int
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a UoWFactory for coordinating transactional updates across
// repositories and the low-stock threshold used to restore packer
// availability after materials are returned.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, lowStockThreshold int) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:        uowFactory,
		lowStockThreshold: lowStockThreshold,
	}
}

// Handle processes the cancellation command.
// Loads the order, cancels it, and if a packer was assigned returns the
// reserved materials to that packer's inventory. Both entities are updated
// within a single transaction. Returns ErrNoOrderFound if the order does
// not exist.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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
	packerRepo := uow.PackerRepository()

	cancelledOrder, err := ordersRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	if err = cancelledOrder.Cancel(); err != nil {
		return err
	}

	if packerID := cancelledOrder.Packer(); packerID != nil {
		assignedPacker, getErr := packerRepo.Get(ctx, *packerID)
		if getErr != nil {
			return getErr
		}

		returned := assignedPacker.Inventory().Return(cancelledOrder.Materials())
		if err = assignedPacker.ApplyInventory(returned); err != nil {
			return err
		}
		if !returned.IsLow(h.lowStockThreshold) {
			assignedPacker.MarkAvailable()
		}

		if err = packerRepo.Update(ctx, assignedPacker); err != nil {
			return err
		}
	}

	if err = ordersRepo.Update(ctx, cancelledOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
