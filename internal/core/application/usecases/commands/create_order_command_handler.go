package commands

import (
	"context"

	"packnow/internal/core/domain/model/order"
	"packnow/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Estimates the material requirement, computes a provisional price with zero
// distance, and persists the order in "created" status awaiting dispatch.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, estimator, engine)
//	cmd, _ := NewCreateOrderCommand(orderID, "customer-1",
//	    order.CategoryGift, 30, 25, 5, 1.2,
//	    order.FragilityLow, order.UrgencyNormal, 19.076, 72.8777)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now created and ready for packer assignment
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	estimator  services.MaterialEstimator
	engine     services.PricingEngine
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence plus the material
// estimator and pricing engine.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	estimator services.MaterialEstimator,
	engine services.PricingEngine,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
		engine:     engine,
	}
}

// Handle processes the order creation command.
// Derives materials and box size from the item attributes, prices the order
// provisionally with zero distance, and persists it in "created" status.
// The price is recomputed with the actual distance during dispatch.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	materials, boxSize, err := h.estimator.Estimate(cmd.Category(), cmd.Dimensions(), cmd.Fragility())
	if err != nil {
		return err
	}

	provisional, err := h.engine.Price(cmd.Category(), materials, 0, cmd.Urgency())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Category(),
		cmd.Dimensions(),
		cmd.Fragility(),
		cmd.Urgency(),
		cmd.Pickup(),
		materials,
		boxSize,
		provisional,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
