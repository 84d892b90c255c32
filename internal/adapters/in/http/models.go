package http

import "github.com/google/uuid"

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Dimensions carries item measurements in centimeters and kilograms.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// GeoPoint carries WGS84 coordinates.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewOrder is the request body for creating a packaging order.
type NewOrder struct {
	CustomerID string     `json:"customer_id"`
	Category   string     `json:"category"`
	Dimensions Dimensions `json:"dimensions"`
	Fragility  string     `json:"fragility"`
	Urgency    string     `json:"urgency"`
	Pickup     GeoPoint   `json:"pickup"`
}

// OrderCreated is the response body returned after creating an order.
type OrderCreated struct {
	ID uuid.UUID `json:"id"`
}

// UpdateOrderStatus is the request body for moving an order through its workflow.
type UpdateOrderStatus struct {
	Status string `json:"status"`
}

// Order is the full order representation returned by the detail endpoint.
type Order struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID string             `json:"customer_id"`
	Category   string             `json:"category"`
	Fragility  string             `json:"fragility"`
	Urgency    string             `json:"urgency"`
	Pickup     GeoPoint           `json:"pickup"`
	Materials  map[string]float64 `json:"materials"`
	BoxSize    string             `json:"box_size"`
	Price      PriceBreakdown     `json:"price"`
	PackerID   *uuid.UUID         `json:"packer_id,omitempty"`
	DistanceKm float64            `json:"distance_km"`
	Status     string             `json:"status"`
}

// PriceBreakdown carries the priced components of an order.
type PriceBreakdown struct {
	BasePrice          float64 `json:"base_price"`
	MaterialCost       float64 `json:"material_cost"`
	DistanceCharge     float64 `json:"distance_charge"`
	UrgencyMultiplier  float64 `json:"urgency_multiplier"`
	CategoryMultiplier float64 `json:"category_multiplier"`
	FinalPrice         float64 `json:"final_price"`
}

// UnassignedOrder represents an order still waiting for a packer.
type UnassignedOrder struct {
	ID         uuid.UUID `json:"id"`
	CustomerID string    `json:"customer_id"`
	Category   string    `json:"category"`
	Urgency    string    `json:"urgency"`
	Pickup     GeoPoint  `json:"pickup"`
	FinalPrice float64   `json:"final_price"`
}

// NewPacker is the request body for registering a packer.
type NewPacker struct {
	Name      string         `json:"name"`
	Location  GeoPoint       `json:"location"`
	Inventory map[string]int `json:"inventory"`
	Rating    float64        `json:"rating"`
}

// PackerCreated is the response body returned after registering a packer.
type PackerCreated struct {
	ID uuid.UUID `json:"id"`
}

// Packer represents a packer in list responses.
type Packer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  GeoPoint  `json:"location"`
	Available bool      `json:"available"`
	Rating    float64   `json:"rating"`
}

// LowStockPacker represents a packer whose stock fell below the threshold.
type LowStockPacker struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	LowItems map[string]int `json:"low_items"`
}

// RestockRequest is the request body for topping up a packer's inventory.
type RestockRequest struct {
	Items map[string]int `json:"items"`
}

// QuoteRequest is the request body for estimating materials and price
// without creating an order.
type QuoteRequest struct {
	Category   string     `json:"category"`
	Dimensions Dimensions `json:"dimensions"`
	Fragility  string     `json:"fragility"`
	Urgency    string     `json:"urgency"`
	DistanceKm float64    `json:"distance_km"`
}

// Quote is the response body with estimated materials and price breakdown.
type Quote struct {
	Materials          map[string]float64 `json:"materials"`
	BoxSize            string             `json:"box_size"`
	BasePrice          float64            `json:"base_price"`
	MaterialCost       float64            `json:"material_cost"`
	DistanceCharge     float64            `json:"distance_charge"`
	UrgencyMultiplier  float64            `json:"urgency_multiplier"`
	CategoryMultiplier float64            `json:"category_multiplier"`
	FinalPrice         float64            `json:"final_price"`
}
