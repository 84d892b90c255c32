package commands

import (
	"errors"
	"fmt"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/pkg/guard"
)

var (
	ErrRestockPackerCommandIsNotConstructed = errors.New(
		"RestockPackerCommand must be created via NewRestockPackerCommand constructor",
	)
	ErrRestockItemsAreRequired = errors.New("restock items are required")
)

// RestockPackerCommand represents a request to add material stock to a
// packer's inventory.
//
// Example:
//
//	cmd, err := NewRestockPackerCommand(packerID, map[string]int{
//	    "bubble_wrap": 50,
//	    "packing_tape": 20,
//	})
//	if err != nil {
//	    return err
//	}
type RestockPackerCommand struct { //nolint:recvcheck //using for validation
	packerID kernel.UUID
	items    map[string]int

	guard guard.ConstructorGuard
}

// NewRestockPackerCommand creates a command to restock a packer.
// Validates the packer ID and requires at least one item with a
// non-negative quantity.
func NewRestockPackerCommand(packerID kernel.UUID, items map[string]int) (RestockPackerCommand, error) {
	restockCommand := RestockPackerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restockCommand.setPackerID(packerID),
		restockCommand.setItems(items),
	); err != nil {
		return RestockPackerCommand{}, err
	}

	return restockCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRestockPackerCommandIsNotConstructed if validation fails.
func (c RestockPackerCommand) Validate() error {
	return c.guard.Validate(ErrRestockPackerCommandIsNotConstructed)
}

// PackerID returns the unique identifier of the packer to restock.
func (c RestockPackerCommand) PackerID() kernel.UUID {
	return c.packerID
}

// Items returns the material quantities to add.
func (c RestockPackerCommand) Items() map[string]int {
	return c.items
}

func (c *RestockPackerCommand) setPackerID(packerID kernel.UUID) error {
	if err := packerID.Validate(); err != nil {
		return err
	}

	c.packerID = packerID
	return nil
}

func (c *RestockPackerCommand) setItems(items map[string]int) error {
	if len(items) == 0 {
		return ErrRestockItemsAreRequired
	}
	for name, qty := range items {
		if qty < 0 {
			return fmt.Errorf("restock quantity for %s must not be negative", name)
		}
	}

	c.items = items
	return nil
}
