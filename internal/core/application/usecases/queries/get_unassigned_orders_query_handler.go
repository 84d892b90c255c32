package queries

import (
	"context"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnassignedOrdersQueryHandler retrieves orders awaiting a packer from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetUnassignedOrdersQueryHandler(db)
//	query := NewGetUnassignedOrdersQuery()
//
//	pendingOrders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get unassigned orders: %v", err)
//	    return err
//	}
//
//	if len(pendingOrders) > 0 {
//	    fmt.Printf("%d orders awaiting a packer\n", len(pendingOrders))
//	}
type GetUnassignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedOrdersQueryHandler creates a handler for unassigned order queries.
// Requires a GORM database connection for query execution.
func NewGetUnassignedOrdersQueryHandler(db *gorm.DB) GetUnassignedOrdersQueryHandler {
	return GetUnassignedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unassigned orders.
// Returns orders in "created" status sorted by order ID for consistent output.
// Converts database types to domain types for consistency.
func (h GetUnassignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedOrdersQuery,
) ([]GetUnassignedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnassignedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			category,
			urgency,
			pickup_lat,
			pickup_lng,
			price_final
		FROM orders
		WHERE status = ?
		ORDER BY id
	`, order.Created).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnassignedOrdersQueryResponse
		var pickupLat, pickupLng float64
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&orderResp.CustomerID,
			&orderResp.Category,
			&orderResp.Urgency,
			&pickupLat,
			&pickupLng,
			&orderResp.FinalPrice,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		pickup, geoErr := kernel.NewGeoPoint(pickupLat, pickupLng)
		if geoErr != nil {
			return nil, geoErr
		}
		orderResp.Pickup = pickup
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
