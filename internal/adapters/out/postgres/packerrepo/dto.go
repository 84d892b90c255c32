// Package packerrepo provides data transfer objects and mapping functions for packer persistence.
// This package implements the repository pattern for the packer domain aggregate, handling
// the conversion between domain entities and database representations.
package packerrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/packer"

	"github.com/google/uuid"
)

// PackerDTO represents the database structure for persisting packer aggregates.
// Maps packer domain entities to relational database tables with an index on
// availability for efficient dispatch queries.
type PackerDTO struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Name      string       `gorm:"type:varchar(255);not null"`
	Location  GeoPointDTO  `gorm:"embedded;embeddedPrefix:location_"`
	Inventory InventoryDTO `gorm:"type:jsonb"`
	Available bool         `gorm:"index"`
	Rating    float64
}

// TableName specifies the database table name for packer entities.
// Overrides GORM's default naming convention to use "packers".
func (PackerDTO) TableName() string {
	return "packers"
}

// GeoPointDTO represents the embedded location coordinates within the packer table.
type GeoPointDTO struct {
	Lat float64
	Lng float64
}

// InventoryDTO stores the packer's material stock as a jsonb column.
type InventoryDTO map[string]int

// Value serializes the inventory for storage.
func (i InventoryDTO) Value() (driver.Value, error) {
	if i == nil {
		return nil, nil
	}
	return json.Marshal(i)
}

// Scan deserializes the inventory from its stored form.
func (i *InventoryDTO) Scan(value any) error {
	if value == nil {
		*i = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported inventory column type %T", value)
	}

	return json.Unmarshal(raw, i)
}

// fromDomain converts a packer domain aggregate to its database representation.
func fromDomain(aggregate *packer.Packer) PackerDTO {
	return PackerDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Location: GeoPointDTO{
			Lat: aggregate.Location().Lat(),
			Lng: aggregate.Location().Lng(),
		},
		Inventory: InventoryDTO(aggregate.Inventory()),
		Available: aggregate.IsAvailable(),
		Rating:    aggregate.Rating(),
	}
}

// toDomain converts a database DTO to a packer domain aggregate.
// Reconstructs the complete aggregate including availability using RestorePacker.
func toDomain(dto PackerDTO) (*packer.Packer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return packer.RestorePacker(
		id,
		dto.Name,
		location,
		packer.Inventory(dto.Inventory),
		dto.Available,
		dto.Rating,
	)
}
