package commands

import (
	"errors"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/order"
	"packnow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// CreateOrderCommand represents a request to create a new packaging order.
// Encapsulates the item's attributes and pickup location; material estimation
// and provisional pricing happen in the handler.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "customer-1",
//	    order.CategoryElectronics, 30, 25, 5, 1.2,
//	    order.FragilityHigh, order.UrgencyNormal, 19.076, 72.8777)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, estimator, engine)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string
	category   order.Category
	dimensions order.ItemDimensions
	fragility  order.Fragility
	urgency    order.Urgency
	pickup     kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new packaging order.
// Validates the order ID, customer id, category, item attributes and pickup
// coordinates. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID string,
	category order.Category,
	length, width, height, weight float64,
	fragility order.Fragility,
	urgency order.Urgency,
	pickupLat, pickupLng float64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setCategory(category),
		orderCommand.setDimensions(length, width, height, weight),
		orderCommand.setFragility(fragility),
		orderCommand.setUrgency(urgency),
		orderCommand.setPickup(pickupLat, pickupLng),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Category returns the item category.
func (c CreateOrderCommand) Category() order.Category {
	return c.category
}

// Dimensions returns the validated item dimensions.
func (c CreateOrderCommand) Dimensions() order.ItemDimensions {
	return c.dimensions
}

// Fragility returns the declared fragility level.
func (c CreateOrderCommand) Fragility() order.Fragility {
	return c.fragility
}

// Urgency returns the handling urgency.
func (c CreateOrderCommand) Urgency() order.Urgency {
	return c.urgency
}

// Pickup returns the validated pickup location.
func (c CreateOrderCommand) Pickup() kernel.GeoPoint {
	return c.pickup
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCategory(category order.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateOrderCommand) setDimensions(length, width, height, weight float64) error {
	dimensions, err := order.NewItemDimensions(length, width, height, weight)
	if err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}

func (c *CreateOrderCommand) setFragility(fragility order.Fragility) error {
	if err := fragility.Validate(); err != nil {
		return err
	}

	c.fragility = fragility
	return nil
}

func (c *CreateOrderCommand) setUrgency(urgency order.Urgency) error {
	if err := urgency.Validate(); err != nil {
		return err
	}

	c.urgency = urgency
	return nil
}

func (c *CreateOrderCommand) setPickup(lat, lng float64) error {
	pickup, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}
