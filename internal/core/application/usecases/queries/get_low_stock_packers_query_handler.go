package queries

import (
	"context"
	"encoding/json"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/packer"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockPackersQueryHandler finds packers whose inventory has dropped
// below the query threshold. Reads the raw inventory column and applies the
// domain's low stock rule rather than duplicating it in SQL.
type GetLowStockPackersQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockPackersQueryHandler creates a handler for low stock queries.
// Requires a GORM database connection for query execution.
func NewGetLowStockPackersQueryHandler(db *gorm.DB) GetLowStockPackersQueryHandler {
	return GetLowStockPackersQueryHandler{db: db}
}

// Handle executes the query to retrieve packers running low on materials.
// Returns only packers with at least one material below the threshold,
// sorted by name.
func (h GetLowStockPackersQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockPackersQuery,
) ([]GetLowStockPackersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packers := make([]GetLowStockPackersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			inventory
		FROM packers
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var id uuid.UUID
		var rawInventory []byte

		err = rows.Scan(&id, &name, &rawInventory)
		if err != nil {
			return nil, err
		}

		var inventory packer.Inventory
		if len(rawInventory) > 0 {
			if jsonErr := json.Unmarshal(rawInventory, &inventory); jsonErr != nil {
				return nil, jsonErr
			}
		}

		if !inventory.IsLow(query.Threshold()) {
			continue
		}

		packerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		packers = append(packers, GetLowStockPackersQueryResponse{
			ID:       packerID,
			Name:     name,
			LowItems: inventory.LowItems(query.Threshold()),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packers, nil
}
