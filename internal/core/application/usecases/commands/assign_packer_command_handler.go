package commands

import (
	"context"
	"errors"

	"packnow/internal/core/domain/services"
	"packnow/internal/pkg/errs"
)

var (
	ErrNoAvailablePackersFound = errors.New("no available packers found")
	ErrNoOrderFound            = errors.New("no order found")
)

// AssignPackerCommandHandler orchestrates the packer assignment process.
// Finds pending orders and matches them with qualifying packers, re-prices
// the order with the actual travel distance and reserves the packer's
// materials, all within a single transaction.
//
// Example:
//
//	handler := NewAssignPackerCommandHandler(uowFactory, dispatcher, engine, 10)
//	cmd := NewAssignPackerCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoAvailablePackersFound):
//	    log.Println("All packers are busy")
//	case errors.Is(err, services.ErrPackerNotFound):
//	    log.Println("No packer qualifies; order stays pending")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Packer assigned successfully")
//	}
type AssignPackerCommandHandler struct {
	uowFactory        UoWFactory
	dispatcher        services.PackerDispatcher
	engine            services.PricingEngine
	lowStockThreshold int
}

// NewAssignPackerCommandHandler creates a handler for packer assignment
// operations. Requires a UoWFactory for coordinating transactional updates
// across repositories, the dispatcher and pricing engine, and the low-stock
// threshold below which a packer is taken out of rotation after deduction.
func NewAssignPackerCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.PackerDispatcher,
	engine services.PricingEngine,
	lowStockThreshold int,
) AssignPackerCommandHandler {
	return AssignPackerCommandHandler{
		uowFactory:        uowFactory,
		dispatcher:        dispatcher,
		engine:            engine,
		lowStockThreshold: lowStockThreshold,
	}
}

// Handle processes the packer assignment command.
// Retrieves the first pending order and the available packer snapshot, uses
// PackerDispatcher to select the best match, re-prices the order with the
// actual distance, deducts the required materials from the packer's
// inventory and marks the packer unavailable when stock drops below the
// threshold. Updates both entities within a single transaction.
//
// Returns specific errors for no orders (ErrNoOrderFound), no available
// packers (ErrNoAvailablePackersFound) and no qualifying packer
// (services.ErrPackerNotFound); in each case the order stays in "created"
// status for a later retry.
func (h AssignPackerCommandHandler) Handle(ctx context.Context, command AssignPackerCommand) error {
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

	packerRepo := uow.PackerRepository()
	ordersRepo := uow.OrderRepository()

	pendingOrder, err := ordersRepo.GetFirstInCreatedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoOrderFound
	}
	if err != nil {
		return err
	}

	packers, err := packerRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(packers) == 0 {
		return ErrNoAvailablePackersFound
	}

	required := pendingOrder.Materials()

	selected, distanceKm, err := h.dispatcher.FindNearestPacker(pendingOrder.Pickup(), required, packers)
	if err != nil {
		return err
	}

	repriced, err := h.engine.Price(pendingOrder.Category(), required, distanceKm, pendingOrder.Urgency())
	if err != nil {
		return err
	}

	if err = pendingOrder.AssignPacker(selected.ID(), distanceKm, repriced); err != nil {
		return err
	}

	deducted := selected.Inventory().Deduct(required)
	if err = selected.ApplyInventory(deducted); err != nil {
		return err
	}
	if deducted.IsLow(h.lowStockThreshold) {
		selected.MarkUnavailable()
	}

	if err = ordersRepo.Update(ctx, pendingOrder); err != nil {
		return err
	}

	if err = packerRepo.Update(ctx, selected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
