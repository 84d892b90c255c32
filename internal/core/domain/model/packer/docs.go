// Package packer provides domain entities and business logic for packaging
// worker management. It implements the Packer aggregate root that owns a
// worker's location, material inventory, availability and rating.
//
// The package includes:
//   - Packer: The aggregate root representing a packaging worker
//   - Inventory: A value-semantics material stock with deduction and
//     return operations used during order assignment and cancellation
//
// Key business rules:
//   - Packers must have a valid unique identifier, name and location
//   - Ratings are bounded to [0, 5]
//   - Inventory deduction charges whole units, never drops stock below
//     zero, and skips materials the packer does not track
//   - Inventory return inserts untracked materials fresh, so cancelled
//     orders restore every reserved material
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package packer
