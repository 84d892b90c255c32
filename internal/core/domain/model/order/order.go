package order

import (
	"errors"
	"fmt"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/material"
	"packnow/internal/pkg/errs"
	"packnow/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all orders
// are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a packaging order in the system. It is the aggregate root
// that manages the order lifecycle from creation through packer assignment to
// completion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty customer id
//   - Category, fragility and urgency must be valid enum values
//   - Item dimensions, pickup location and price breakdown must be constructed
//   - Status transitions follow defined business rules
//   - A packer can only be attached together with a status that allows one
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID string

	// category is the kind of item being packaged
	category Category

	// dimensions are the physical measurements of the item
	dimensions ItemDimensions

	// fragility is the declared fragility level of the item
	fragility Fragility

	// urgency indicates whether the order requires urgent handling
	urgency Urgency

	// pickup is the geographic pickup location
	pickup kernel.GeoPoint

	// materials is the estimated packaging material requirement
	materials material.Requirement

	// boxSize is the selected cardboard box tier name
	boxSize string

	// price is the current price breakdown for the order
	price PriceBreakdown

	// packerID is the assigned packer's ID (nil if unassigned)
	packerID *kernel.UUID

	// distanceKm is the distance to the assigned packer in kilometers
	distanceKm float64

	// status represents the current state in the order lifecycle
	status Status

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a fresh order, ensuring all business invariants are maintained.
//
// The order starts in Created status with no packer assigned and a zero
// distance. The price breakdown passed in is the provisional one computed
// before a packer is known; AssignPacker replaces it with the re-priced
// breakdown once the actual distance is available.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Identifier of the customer placing the order
//   - category: Item category (must be a valid Category)
//   - dimensions: Physical item measurements
//   - fragility: Declared fragility level
//   - urgency: Handling urgency
//   - pickup: Pickup location with validated coordinates
//   - materials: Estimated packaging material requirement
//   - boxSize: Selected cardboard box tier name
//   - price: Provisional price breakdown
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	customerID string,
	category Category,
	dimensions ItemDimensions,
	fragility Fragility,
	urgency Urgency,
	pickup kernel.GeoPoint,
	materials material.Requirement,
	boxSize string,
	price PriceBreakdown,
) (*Order, error) {
	order := &Order{
		status: Created,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCategory(category),
		order.setDimensions(dimensions),
		order.setFragility(fragility),
		order.setUrgency(urgency),
		order.setPickup(pickup),
		order.setMaterials(materials),
		order.setBoxSize(boxSize),
		order.setPrice(price),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder which creates fresh orders in Created status, this
// constructor restores an order to its previously persisted state, including
// its status, assigned packer and travel distance.
//
// The restored order behaves identically to one created through normal
// domain operations.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	category Category,
	dimensions ItemDimensions,
	fragility Fragility,
	urgency Urgency,
	pickup kernel.GeoPoint,
	materials material.Requirement,
	boxSize string,
	price PriceBreakdown,
	packerID *kernel.UUID,
	distanceKm float64,
	status Status,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCategory(category),
		order.setDimensions(dimensions),
		order.setFragility(fragility),
		order.setUrgency(urgency),
		order.setPickup(pickup),
		order.setMaterials(materials),
		order.setBoxSize(boxSize),
		order.setPrice(price),
		order.setDistanceKm(distanceKm),
		order.setStatusWithPacker(status, packerID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}

	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Category returns the item category of the order.
func (o *Order) Category() Category {
	return o.category
}

// Dimensions returns the physical measurements of the packaged item.
func (o *Order) Dimensions() ItemDimensions {
	return o.dimensions
}

// Fragility returns the declared fragility level of the item.
func (o *Order) Fragility() Fragility {
	return o.fragility
}

// Urgency returns the handling urgency of the order.
func (o *Order) Urgency() Urgency {
	return o.urgency
}

// Pickup returns the geographic pickup location.
func (o *Order) Pickup() kernel.GeoPoint {
	return o.pickup
}

// Materials returns a copy of the estimated material requirement.
func (o *Order) Materials() material.Requirement {
	return o.materials.Clone()
}

// BoxSize returns the selected cardboard box tier name.
func (o *Order) BoxSize() string {
	return o.boxSize
}

// Price returns the current price breakdown for the order.
func (o *Order) Price() PriceBreakdown {
	return o.price
}

// Packer returns the assigned packer's ID.
// Returns nil if no packer is assigned.
func (o *Order) Packer() *kernel.UUID {
	return o.packerID
}

// DistanceKm returns the distance between the pickup location
// and the assigned packer in kilometers. Zero while unassigned.
func (o *Order) DistanceKm() float64 {
	return o.distanceKm
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignPacker assigns the order to a packer and updates the status to
// PackerAssigned. The provisional price breakdown is replaced with the
// re-priced one computed from the actual travel distance.
//
// This method enforces the following business rules:
//   - The packer ID must be valid
//   - The distance must not be negative
//   - The re-priced breakdown must be constructed
//   - The order must be in Created status
//
// Returns:
//   - nil on successful assignment
//   - error if any parameter is invalid or the status transition is not allowed
func (o *Order) AssignPacker(packerID kernel.UUID, distanceKm float64, repriced PriceBreakdown) error {
	if err := packerID.Validate(); err != nil {
		return err
	}
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm is invalid",
			fmt.Errorf("%f is not greater than or equal to 0", distanceKm))
	}
	if err := repriced.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.AssignPacker()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.packerID = &packerID
	o.distanceKm = distanceKm
	o.price = repriced
	return nil
}

// MarkOnTheWay marks the assigned packer as traveling to the pickup location.
// The order must be in PackerAssigned status.
func (o *Order) MarkOnTheWay() error {
	newStatus, err := o.status.MarkOnTheWay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkPacked marks the item as physically packaged.
// The order must be in OnTheWay status.
func (o *Order) MarkPacked() error {
	newStatus, err := o.status.MarkPacked()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as fulfilled.
//
// This method enforces the following business rules:
//   - The order must be in Packed status
//   - Completed is a final state with no further transitions
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order. Valid from any non-final status.
// Returning reserved materials to the assigned packer, if any,
// is the caller's responsibility.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = customerID
	return nil
}

// setCategory validates and sets the item category.
// This is a private method used only during construction.
func (o *Order) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	o.category = category
	return nil
}

// setDimensions validates and sets the item dimensions.
// This is a private method used only during construction.
func (o *Order) setDimensions(dimensions ItemDimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	o.dimensions = dimensions
	return nil
}

// setFragility validates and sets the fragility level.
// This is a private method used only during construction.
func (o *Order) setFragility(fragility Fragility) error {
	if err := fragility.Validate(); err != nil {
		return err
	}
	o.fragility = fragility
	return nil
}

// setUrgency validates and sets the urgency.
// This is a private method used only during construction.
func (o *Order) setUrgency(urgency Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}
	o.urgency = urgency
	return nil
}

// setPickup validates and sets the pickup location.
// This is a private method used only during construction.
func (o *Order) setPickup(pickup kernel.GeoPoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	o.pickup = pickup
	return nil
}

// setMaterials sets the material requirement, copying it to preserve
// value semantics. This is a private method used only during construction.
func (o *Order) setMaterials(materials material.Requirement) error {
	if materials == nil {
		return errs.NewValueIsRequiredError("materials")
	}
	o.materials = materials.Clone()
	return nil
}

// setBoxSize validates and sets the cardboard box tier name.
// This is a private method used only during construction.
func (o *Order) setBoxSize(boxSize string) error {
	if boxSize == "" {
		return errs.NewValueIsRequiredError("boxSize")
	}
	o.boxSize = boxSize
	return nil
}

// setPrice validates and sets the price breakdown.
// This is a private method used only during construction.
func (o *Order) setPrice(price PriceBreakdown) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}

// setDistanceKm validates and sets the travel distance.
// This is a private method used only during restoration.
func (o *Order) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm is invalid",
			fmt.Errorf("%f is not greater than or equal to 0", distanceKm))
	}
	o.distanceKm = distanceKm
	return nil
}

// setStatusWithPacker validates the status together with the packer reference
// and sets both. This is a private method used only during restoration.
func (o *Order) setStatusWithPacker(status Status, packerID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if packerID != nil {
		if err := packerID.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateCanHavePacker(packerID != nil); err != nil {
		return err
	}

	o.status = status
	o.packerID = packerID
	return nil
}
