package commands

import (
	"errors"

	"packnow/internal/pkg/guard"
)

var ErrAssignPackerCommandIsNotConstructed = errors.New(
	"AssignPackerCommand must be created via NewAssignPackerCommand constructor",
)

// AssignPackerCommand triggers the assignment of a qualifying packer to a
// pending order. It finds the first order in "created" status, selects the
// nearest available packer with sufficient inventory, re-prices the order
// with the actual distance and reserves the materials.
//
// Example:
//
//	cmd := NewAssignPackerCommand()
//	handler := NewAssignPackerCommandHandler(uowFactory, dispatcher, engine, 10)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no qualifying packers: %v", err)
//	}
type AssignPackerCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignPackerCommand creates a new command to trigger packer assignment.
// This is a parameterless command that initiates the packer-order matching process.
func NewAssignPackerCommand() AssignPackerCommand {
	return AssignPackerCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignPackerCommandIsNotConstructed if validation fails.
func (c *AssignPackerCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignPackerCommandIsNotConstructed,
	)
}
