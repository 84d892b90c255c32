package packer

import (
	"errors"
	"fmt"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/pkg/errs"
	"packnow/internal/pkg/guard"
)

const (
	// packerMinRating is the lowest allowed packer rating.
	packerMinRating = 0.0
	// packerMaxRating is the highest allowed packer rating.
	packerMaxRating = 5.0
)

// ErrPackerIsNotConstructed is returned when a Packer instance was not created
// through the NewPacker or RestorePacker factory methods.
var ErrPackerIsNotConstructed = errors.New("Packer must be created via NewPacker or RestorePacker constructor")

// Packer represents a packaging worker in the system. It is an aggregate root
// that owns the worker's location, material inventory, availability and
// customer rating.
//
// Packer follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Location must be a constructed GeoPoint
//   - Rating must be within [0, 5]
//   - Inventory is replaced wholesale through ApplyInventory or Restock,
//     preserving value semantics
type Packer struct {
	// id is the unique identifier for the packer
	id kernel.UUID

	// name is the packer's human-readable name
	name string

	// location is the packer's current position
	location kernel.GeoPoint

	// inventory is the packer's material stock
	inventory Inventory

	// available indicates whether the packer can take new orders
	available bool

	// rating is the packer's customer rating, 0 to 5
	rating float64

	// guard ensures the packer was created via a constructor
	guard guard.ConstructorGuard
}

// NewPacker creates a new Packer instance with validation. This is the only
// way to register a fresh packer, ensuring all business invariants are
// maintained.
//
// New packers start available. The starting inventory may be empty but must
// not be nil.
//
// Parameters:
//   - id: Unique identifier for the packer (must be valid UUID)
//   - name: Human-readable packer name (must not be empty)
//   - location: Current position with validated coordinates
//   - inventory: Starting material stock
//   - rating: Customer rating within [0, 5]
//
// Returns:
//   - *Packer: The created packer if all validations pass
//   - error: Validation error if any parameter is invalid
func NewPacker(
	id kernel.UUID,
	name string,
	location kernel.GeoPoint,
	inventory Inventory,
	rating float64,
) (*Packer, error) {
	packer := &Packer{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packer.setID(id),
		packer.setName(name),
		packer.setLocation(location),
		packer.setInventory(inventory),
		packer.setRating(rating),
	); err != nil {
		return nil, err
	}

	return packer, nil
}

// RestorePacker reconstructs a Packer aggregate from persistent storage.
// Unlike NewPacker which registers fresh packers as available, this
// constructor restores a packer to its previously persisted state, including
// its availability flag.
func RestorePacker(
	id kernel.UUID,
	name string,
	location kernel.GeoPoint,
	inventory Inventory,
	available bool,
	rating float64,
) (*Packer, error) {
	packer := &Packer{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packer.setID(id),
		packer.setName(name),
		packer.setLocation(location),
		packer.setInventory(inventory),
		packer.setRating(rating),
	); err != nil {
		return nil, err
	}

	return packer, nil
}

// Validate ensures the Packer instance was properly constructed.
func (p *Packer) Validate() error {
	if p == nil {
		return ErrPackerIsNotConstructed
	}

	return p.guard.Validate(ErrPackerIsNotConstructed)
}

// IsEqual compares two packers by their unique identifiers.
func (p *Packer) IsEqual(other *Packer) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the packer's unique identifier.
func (p *Packer) ID() kernel.UUID {
	return p.id
}

// Name returns the packer's name.
func (p *Packer) Name() string {
	return p.name
}

// Location returns the packer's current position.
func (p *Packer) Location() kernel.GeoPoint {
	return p.location
}

// Inventory returns a copy of the packer's material stock.
func (p *Packer) Inventory() Inventory {
	return p.inventory.Clone()
}

// IsAvailable reports whether the packer can take new orders.
func (p *Packer) IsAvailable() bool {
	return p.available
}

// Rating returns the packer's customer rating.
func (p *Packer) Rating() float64 {
	return p.rating
}

// MarkAvailable marks the packer as able to take new orders.
func (p *Packer) MarkAvailable() {
	p.available = true
}

// MarkUnavailable marks the packer as unable to take new orders,
// typically because their inventory has run low.
func (p *Packer) MarkUnavailable() {
	p.available = false
}

// MoveTo updates the packer's current position.
func (p *Packer) MoveTo(location kernel.GeoPoint) error {
	return p.setLocation(location)
}

// ApplyInventory replaces the packer's material stock with the given
// inventory. The inventory is copied to preserve value semantics.
// Used after Deduct or Return computations produce the new stock.
func (p *Packer) ApplyInventory(inventory Inventory) error {
	return p.setInventory(inventory)
}

// Restock adds the given quantities to the packer's material stock.
// Materials not yet tracked are inserted fresh. Quantities must not be
// negative.
func (p *Packer) Restock(items map[string]int) error {
	for name, qty := range items {
		if qty < 0 {
			return errs.NewValueIsInvalidErrorWithCause("restock quantity is invalid",
				fmt.Errorf("%d for %s is negative", qty, name))
		}
	}

	restocked := p.inventory.Clone()
	for name, qty := range items {
		restocked[name] += qty
	}

	p.inventory = restocked
	return nil
}

// setID validates and sets the packer's unique identifier.
// This is a private method used only during construction.
func (p *Packer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setName validates and sets the packer's name.
// This is a private method used only during construction.
func (p *Packer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// setLocation validates and sets the packer's position.
func (p *Packer) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

// setInventory sets the packer's stock, copying it to preserve value
// semantics.
func (p *Packer) setInventory(inventory Inventory) error {
	if inventory == nil {
		return errs.NewValueIsRequiredError("inventory")
	}
	p.inventory = inventory.Clone()
	return nil
}

// setRating validates and sets the packer's rating.
// This is a private method used only during construction.
func (p *Packer) setRating(rating float64) error {
	if rating < packerMinRating || rating > packerMaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, packerMinRating, packerMaxRating)
	}
	p.rating = rating
	return nil
}
