package queries

import (
	"errors"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves the full read model of a single order.
// Returns the order's details, price breakdown and workflow state.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	order, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", order.ID, order.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by its ID.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse represents the complete order read model.
type GetOrderQueryResponse struct {
	ID         kernel.UUID
	CustomerID string
	Category   string
	Fragility  string
	Urgency    string
	Pickup     kernel.GeoPoint
	Materials  map[string]float64
	BoxSize    string

	BasePrice          float64
	MaterialCost       float64
	DistanceCharge     float64
	UrgencyMultiplier  float64
	CategoryMultiplier float64
	FinalPrice         float64

	PackerID   *kernel.UUID
	DistanceKm float64
	Status     string
}
