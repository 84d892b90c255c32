package queries

import (
	"errors"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/pkg/guard"
)

var (
	ErrGetAllPackersQueryIsNotConstructed = errors.New(
		"GetAllPackersQuery must be created via NewGetAllPackersQuery constructor",
	)
)

// GetAllPackersQuery retrieves information about all packers in the system.
// Returns packer identities, locations and availability for monitoring
// and dispatching.
//
// Example:
//
//	query := NewGetAllPackersQuery()
//	handler := NewGetAllPackersQueryHandler(db)
//
//	packers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve packers: %w", err)
//	}
//
//	for _, packer := range packers {
//	    fmt.Printf("Packer %s at (%.4f, %.4f)\n",
//	        packer.Name, packer.Location.Lat(), packer.Location.Lng())
//	}
type GetAllPackersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPackersQuery creates a query to retrieve all packers.
// This is a parameterless query that fetches the complete packer list.
func NewGetAllPackersQuery() GetAllPackersQuery {
	return GetAllPackersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllPackersQueryIsNotConstructed if validation fails.
func (q GetAllPackersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPackersQueryIsNotConstructed)
}

// GetAllPackersQueryResponse represents packer information in the read model.
// Contains essential packer data for display and dispatch decisions.
type GetAllPackersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Location  kernel.GeoPoint
	Available bool
	Rating    float64
}
