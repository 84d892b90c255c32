// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/pkg/guard"
)

var (
	ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
		"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
	)
)

// GetUnassignedOrdersQuery retrieves all orders still waiting for a packer.
// Returns orders in "created" status for monitoring and dispatching.
//
// Example:
//
//	query := NewGetUnassignedOrdersQuery()
//	handler := NewGetUnassignedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unassigned orders: %w", err)
//	}
//
//	fmt.Printf("Found %d orders awaiting a packer\n", len(orders))
//	for _, order := range orders {
//	    fmt.Printf("Order %s pickup at (%.4f, %.4f)\n",
//	        order.ID, order.Pickup.Lat(), order.Pickup.Lng())
//	}
type GetUnassignedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query to retrieve unassigned orders.
// This is a parameterless query that fetches all orders in created status.
func NewGetUnassignedOrdersQuery() GetUnassignedOrdersQuery {
	return GetUnassignedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnassignedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// GetUnassignedOrdersQueryResponse represents pending order information.
// Contains essential data for dispatch monitoring.
type GetUnassignedOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID string
	Category   string
	Urgency    string
	Pickup     kernel.GeoPoint
	FinalPrice float64
}
