package commands

import (
	"context"

	"packnow/internal/core/domain/model/packer"
)

// CreatePackerCommandHandler handles the business logic for packer
// registration. New packers start available with their declared inventory.
//
// Example:
//
//	handler := NewCreatePackerCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("packer registration failed: %w", err)
//	}
type CreatePackerCommandHandler struct {
	uowFactory PackerUoWFactory
}

// NewCreatePackerCommandHandler creates a handler for packer registration.
// Requires a PackerUoWFactory for transactional persistence.
func NewCreatePackerCommandHandler(uowFactory PackerUoWFactory) CreatePackerCommandHandler {
	return CreatePackerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the packer registration command.
// Constructs the packer aggregate and persists it within a transaction.
func (h *CreatePackerCommandHandler) Handle(ctx context.Context, cmd CreatePackerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newPacker, err := packer.NewPacker(
		cmd.PackerID(),
		cmd.Name(),
		cmd.Location(),
		cmd.Inventory(),
		cmd.Rating(),
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

	if err = uow.PackerRepository().Add(ctx, newPacker); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
