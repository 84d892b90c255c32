package services

import (
	"math"

	"packnow/internal/core/domain/model/material"
	"packnow/internal/core/domain/model/order"
	"packnow/internal/pkg/errs"
)

// Tariff holds the externally configured pricing reference data.
// It is loaded once at process start and passed explicitly into the
// PricingEngine; the engine never consults ambient globals.
type Tariff struct {
	// BasePackingFee is the flat fee added to the material cost.
	BasePackingFee float64

	// PricePerKm is the charge per kilometer of travel distance.
	PricePerKm float64

	// UrgentMultiplier scales the price of urgent orders.
	UrgentMultiplier float64

	// CategoryMultipliers maps each category to its price multiplier.
	// Categories absent from the table default to 1.0.
	CategoryMultipliers map[order.Category]float64
}

// DefaultTariff returns the standard pricing table.
func DefaultTariff() Tariff {
	return Tariff{
		BasePackingFee:   50,
		PricePerKm:       10,
		UrgentMultiplier: 1.5,
		CategoryMultipliers: map[order.Category]float64{
			order.CategoryGift:           1.0,
			order.CategoryElectronics:    1.2,
			order.CategoryFood:           1.1,
			order.CategoryDocuments:      0.8,
			order.CategoryBusinessOrders: 1.3,
			order.CategoryFragileItems:   1.3,
			order.CategoryHouseShifting:  1.5,
		},
	}
}

// PricingEngine is a domain service that turns a material requirement,
// travel distance, urgency and category into a price breakdown.
//
// Business rules:
//   - material_cost is the catalog cost of the requirement
//   - base_price = material_cost + base packing fee
//   - distance_charge = distance × per-km rate
//   - final_price = (base_price + distance_charge) × urgency × category
//   - every monetary value is rounded to 2 decimal places independently
//
// Unknown categories fall back to a 1.0 multiplier rather than failing.
//
// Example usage:
//
//	engine := services.NewPricingEngine(material.DefaultCatalog(), services.DefaultTariff())
//	breakdown, err := engine.Price(order.CategoryGift, required, 5.0, order.UrgencyNormal)
type PricingEngine struct {
	catalog material.Catalog
	tariff  Tariff
}

// NewPricingEngine creates a PricingEngine over the given catalog and tariff.
func NewPricingEngine(catalog material.Catalog, tariff Tariff) PricingEngine {
	return PricingEngine{
		catalog: catalog,
		tariff:  tariff,
	}
}

// Price computes the price breakdown for an order.
//
// Parameters:
//   - category: The order category selecting the price multiplier
//   - materials: The material requirement to cost
//   - distanceKm: Travel distance in kilometers (must not be negative)
//   - urgency: Handling urgency
//
// Returns:
//   - order.PriceBreakdown: The computed breakdown
//   - error: Validation error if the distance is negative or urgency invalid
func (e PricingEngine) Price(
	category order.Category,
	materials material.Requirement,
	distanceKm float64,
	urgency order.Urgency,
) (order.PriceBreakdown, error) {
	if distanceKm < 0 {
		return order.PriceBreakdown{}, errs.NewValueIsOutOfRangeError(
			"distanceKm", distanceKm, 0.0, math.MaxFloat64)
	}
	if err := urgency.Validate(); err != nil {
		return order.PriceBreakdown{}, err
	}

	materialCost := e.catalog.Cost(materials)
	basePrice := roundTo2(materialCost + e.tariff.BasePackingFee)
	distanceCharge := roundTo2(distanceKm * e.tariff.PricePerKm)

	urgencyMultiplier := 1.0
	if urgency == order.UrgencyUrgent {
		urgencyMultiplier = e.tariff.UrgentMultiplier
	}

	categoryMultiplier, ok := e.tariff.CategoryMultipliers[category]
	if !ok {
		categoryMultiplier = 1.0
	}

	finalPrice := roundTo2((basePrice + distanceCharge) * urgencyMultiplier * categoryMultiplier)

	return order.NewPriceBreakdown(
		basePrice,
		materialCost,
		distanceCharge,
		urgencyMultiplier,
		categoryMultiplier,
		finalPrice,
	)
}

// roundTo2 rounds a value to 2 decimal places.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
