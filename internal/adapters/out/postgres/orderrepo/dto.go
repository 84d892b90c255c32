// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/material"
	"packnow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and packer assignment.
type OrderDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID string        `gorm:"type:varchar(255);not null"`
	Category   string        `gorm:"type:varchar(32);not null"`
	Dimensions DimensionsDTO `gorm:"embedded;embeddedPrefix:dim_"`
	Fragility  string        `gorm:"type:varchar(16);not null"`
	Urgency    string        `gorm:"type:varchar(16);not null"`
	Pickup     GeoPointDTO   `gorm:"embedded;embeddedPrefix:pickup_"`
	Materials  MaterialsDTO  `gorm:"type:jsonb"`
	BoxSize    string        `gorm:"type:varchar(16);not null"`
	Price      PriceDTO      `gorm:"embedded;embeddedPrefix:price_"`
	PackerID   *uuid.UUID    `gorm:"type:uuid;index"`
	DistanceKm float64
	Status     int `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DimensionsDTO represents the embedded item dimensions within the order table.
type DimensionsDTO struct {
	Length float64
	Width  float64
	Height float64
	Weight float64
}

// GeoPointDTO represents the embedded pickup coordinates within the order table.
type GeoPointDTO struct {
	Lat float64
	Lng float64
}

// PriceDTO represents the embedded price breakdown within the order table.
type PriceDTO struct {
	Base               float64
	Materials          float64
	Distance           float64
	UrgencyMultiplier  float64
	CategoryMultiplier float64
	Final              float64
}

// MaterialsDTO stores the material requirement as a jsonb column.
// Quantities may be fractional, matching the domain representation.
type MaterialsDTO map[string]float64

// Value serializes the material requirement for storage.
func (m MaterialsDTO) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan deserializes the material requirement from its stored form.
func (m *MaterialsDTO) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported materials column type %T", value)
	}

	return json.Unmarshal(raw, m)
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional packer assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var packerID *uuid.UUID
	if id := aggregate.Packer(); id != nil {
		raw := id.Bytes()
		packerID = &raw
	}

	dims := aggregate.Dimensions()
	price := aggregate.Price()

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID(),
		Category:   string(aggregate.Category()),
		Dimensions: DimensionsDTO{
			Length: dims.Length(),
			Width:  dims.Width(),
			Height: dims.Height(),
			Weight: dims.Weight(),
		},
		Fragility: string(aggregate.Fragility()),
		Urgency:   string(aggregate.Urgency()),
		Pickup: GeoPointDTO{
			Lat: aggregate.Pickup().Lat(),
			Lng: aggregate.Pickup().Lng(),
		},
		Materials: MaterialsDTO(aggregate.Materials()),
		BoxSize:   aggregate.BoxSize(),
		Price: PriceDTO{
			Base:               price.BasePrice(),
			Materials:          price.MaterialCost(),
			Distance:           price.DistanceCharge(),
			UrgencyMultiplier:  price.UrgencyMultiplier(),
			CategoryMultiplier: price.CategoryMultiplier(),
			Final:              price.FinalPrice(),
		},
		PackerID:   packerID,
		DistanceKm: aggregate.DistanceKm(),
		Status:     int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and packer assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var packerID *kernel.UUID
	if dto.PackerID != nil {
		pID, packerErr := kernel.UUIDFromBytes((*dto.PackerID)[:])
		if packerErr != nil {
			return nil, packerErr
		}

		packerID = &pID
	}

	dims, err := order.NewItemDimensions(
		dto.Dimensions.Length,
		dto.Dimensions.Width,
		dto.Dimensions.Height,
		dto.Dimensions.Weight,
	)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewGeoPoint(dto.Pickup.Lat, dto.Pickup.Lng)
	if err != nil {
		return nil, err
	}

	price, err := order.NewPriceBreakdown(
		dto.Price.Base,
		dto.Price.Materials,
		dto.Price.Distance,
		dto.Price.UrgencyMultiplier,
		dto.Price.CategoryMultiplier,
		dto.Price.Final,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		order.Category(dto.Category),
		dims,
		order.Fragility(dto.Fragility),
		order.Urgency(dto.Urgency),
		pickup,
		material.Requirement(dto.Materials),
		dto.BoxSize,
		price,
		packerID,
		dto.DistanceKm,
		order.Status(dto.Status),
	)
}
