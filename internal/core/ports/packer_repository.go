// Package ports defines repository interfaces for the packaging domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/packer"
)

// PackerRepository defines the persistence contract for packer aggregates.
// Provides methods for storing, retrieving, and querying packer entities
// with their complete state including material inventory.
type PackerRepository interface {
	// Add persists a new packer aggregate to storage.
	// The packer must be valid and not already exist in the repository.
	Add(ctx context.Context, packer *packer.Packer) error

	// Update persists changes to an existing packer aggregate.
	// The packer must exist in the repository and be valid.
	Update(ctx context.Context, packer *packer.Packer) error

	// Get retrieves a packer aggregate by its unique identifier.
	// Returns the complete packer with its inventory and availability.
	Get(ctx context.Context, id kernel.UUID) (*packer.Packer, error)

	// GetAllAvailable retrieves all packers currently able to take new orders.
	// Used by the dispatch workflow as the candidate snapshot.
	GetAllAvailable(ctx context.Context) ([]*packer.Packer, error)
}
