package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/order"
	"packnow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order by its ID.
// Returns an errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			category,
			fragility,
			urgency,
			pickup_lat,
			pickup_lng,
			materials,
			box_size,
			price_base,
			price_materials,
			price_distance,
			price_urgency_multiplier,
			price_category_multiplier,
			price_final,
			packer_id,
			distance_km,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var packerID uuid.NullUUID
	var pickupLat, pickupLng float64
	var rawMaterials []byte
	var status int

	err := row.Scan(
		&id,
		&resp.CustomerID,
		&resp.Category,
		&resp.Fragility,
		&resp.Urgency,
		&pickupLat,
		&pickupLng,
		&rawMaterials,
		&resp.BoxSize,
		&resp.BasePrice,
		&resp.MaterialCost,
		&resp.DistanceCharge,
		&resp.UrgencyMultiplier,
		&resp.CategoryMultiplier,
		&resp.FinalPrice,
		&packerID,
		&resp.DistanceKm,
		&status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID

	pickup, err := kernel.NewGeoPoint(pickupLat, pickupLng)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Pickup = pickup

	if len(rawMaterials) > 0 {
		if jsonErr := json.Unmarshal(rawMaterials, &resp.Materials); jsonErr != nil {
			return GetOrderQueryResponse{}, jsonErr
		}
	}

	if packerID.Valid {
		assignedID, idErr := kernel.UUIDFromBytes(packerID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.PackerID = &assignedID
	}

	resp.Status = order.Status(status).String()

	return resp, nil
}
