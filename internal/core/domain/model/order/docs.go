// Package order provides domain entities and business logic for order management
// in the packaging system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Category, Fragility, Urgency: Validated enumerations describing the item
//   - ItemDimensions: Physical measurements of the item being packaged
//   - PriceBreakdown: The immutable pricing result attached to an order
//
// Key business rules:
//   - Orders must have a valid unique identifier, customer, pickup location,
//     item dimensions and a constructed price breakdown
//   - Order status follows a defined workflow:
//     Created -> PackerAssigned -> OnTheWay -> Packed -> Completed
//   - Orders can be cancelled from any non-final status
//   - A packer can only be assigned while the order is in Created status,
//     and assignment replaces the provisional price with the re-priced one
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
