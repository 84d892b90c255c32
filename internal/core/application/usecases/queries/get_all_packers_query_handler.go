package queries

import (
	"context"

	"packnow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllPackersQueryHandler retrieves all packer information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllPackersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPackersQueryHandler creates a handler for packer retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllPackersQueryHandler(db *gorm.DB) GetAllPackersQueryHandler {
	return GetAllPackersQueryHandler{db: db}
}

// Handle executes the query to retrieve all packers.
// Returns a slice of packer read models sorted by name.
// Converts database types to domain types for consistency.
func (h GetAllPackersQueryHandler) Handle(
	ctx context.Context,
	query GetAllPackersQuery,
) ([]GetAllPackersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packers := make([]GetAllPackersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			location_lat,
			location_lng,
			available,
			rating
		FROM packers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var packerResp GetAllPackersQueryResponse
		var locationLat, locationLng float64
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&packerResp.Name,
			&locationLat,
			&locationLng,
			&packerResp.Available,
			&packerResp.Rating,
		)
		if err != nil {
			return nil, err
		}

		packerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		packerResp.ID = packerID

		location, geoErr := kernel.NewGeoPoint(locationLat, locationLng)
		if geoErr != nil {
			return nil, geoErr
		}
		packerResp.Location = location
		packers = append(packers, packerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packers, nil
}
