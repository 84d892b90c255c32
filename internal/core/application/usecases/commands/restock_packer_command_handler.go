package commands

import (
	"context"
	"errors"

	"packnow/internal/pkg/errs"
)

// ErrNoPackerFound is returned when a command references a packer that does
// not exist in the repository.
var ErrNoPackerFound = errors.New("no packer found")

// RestockPackerCommandHandler handles the business logic for inventory
// restocking. Adds the delivered stock to the packer's inventory and brings
// the packer back into rotation when stock is no longer low.
//
// Example:
//
//	handler := NewRestockPackerCommandHandler(uowFactory, 10)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("restock failed: %w", err)
//	}
type RestockPackerCommandHandler struct {
	uowFactory        PackerUoWFactory
	lowStockThreshold int
}

// NewRestockPackerCommandHandler creates a handler for restock operations.
// Requires a PackerUoWFactory for transactional persistence and the
// low-stock threshold used to restore availability.
func NewRestockPackerCommandHandler(uowFactory PackerUoWFactory, lowStockThreshold int) RestockPackerCommandHandler {
	return RestockPackerCommandHandler{
		uowFactory:        uowFactory,
		lowStockThreshold: lowStockThreshold,
	}
}

// Handle processes the restock command.
// Loads the packer, adds the delivered quantities and marks the packer
// available again when no material remains below the threshold.
// Returns ErrNoPackerFound if the packer does not exist.
func (h RestockPackerCommandHandler) Handle(ctx context.Context, command RestockPackerCommand) error {
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

	restockedPacker, err := packerRepo.Get(ctx, command.PackerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoPackerFound
	}
	if err != nil {
		return err
	}

	if err = restockedPacker.Restock(command.Items()); err != nil {
		return err
	}
	if !restockedPacker.Inventory().IsLow(h.lowStockThreshold) {
		restockedPacker.MarkAvailable()
	}

	if err = packerRepo.Update(ctx, restockedPacker); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
