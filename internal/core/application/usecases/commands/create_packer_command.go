package commands

import (
	"errors"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/packer"
	"packnow/internal/pkg/guard"
)

var (
	ErrCreatePackerCommandIsNotConstructed = errors.New(
		"CreatePackerCommand must be created via NewCreatePackerCommand constructor",
	)
	ErrPackerNameIsRequired = errors.New("packer name is required")
)

// CreatePackerCommand represents a request to register a new packer with a
// starting material inventory.
//
// Example:
//
//	packerID := kernel.NewUUID()
//	cmd, err := NewCreatePackerCommand(packerID, "Asha", 19.076, 72.8777,
//	    packer.Inventory{"bubble_wrap": 100, "packing_tape": 50}, 4.5)
//	if err != nil {
//	    return fmt.Errorf("invalid packer data: %w", err)
//	}
type CreatePackerCommand struct { //nolint:recvcheck //using for validation
	packerID  kernel.UUID
	name      string
	location  kernel.GeoPoint
	inventory packer.Inventory
	rating    float64

	guard guard.ConstructorGuard
}

// NewCreatePackerCommand creates a command to register a new packer.
// Validates the packer ID, name and location coordinates; the rating and
// inventory are validated by the aggregate constructor in the handler.
func NewCreatePackerCommand(
	packerID kernel.UUID,
	name string,
	lat, lng float64,
	inventory packer.Inventory,
	rating float64,
) (CreatePackerCommand, error) {
	packerCommand := CreatePackerCommand{
		inventory: inventory,
		rating:    rating,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packerCommand.setPackerID(packerID),
		packerCommand.setName(name),
		packerCommand.setLocation(lat, lng),
	); err != nil {
		return CreatePackerCommand{}, err
	}

	return packerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePackerCommandIsNotConstructed if validation fails.
func (c CreatePackerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackerCommandIsNotConstructed)
}

// PackerID returns the unique identifier for the packer.
func (c CreatePackerCommand) PackerID() kernel.UUID {
	return c.packerID
}

// Name returns the packer's name.
func (c CreatePackerCommand) Name() string {
	return c.name
}

// Location returns the validated packer location.
func (c CreatePackerCommand) Location() kernel.GeoPoint {
	return c.location
}

// Inventory returns the starting material stock.
func (c CreatePackerCommand) Inventory() packer.Inventory {
	return c.inventory
}

// Rating returns the packer's starting rating.
func (c CreatePackerCommand) Rating() float64 {
	return c.rating
}

func (c *CreatePackerCommand) setPackerID(packerID kernel.UUID) error {
	if err := packerID.Validate(); err != nil {
		return err
	}

	c.packerID = packerID
	return nil
}

func (c *CreatePackerCommand) setName(name string) error {
	if name == "" {
		return ErrPackerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePackerCommand) setLocation(lat, lng float64) error {
	location, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return err
	}

	c.location = location
	return nil
}
