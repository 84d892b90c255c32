package services

import (
	"math"

	"packnow/internal/core/domain/model/material"
	"packnow/internal/core/domain/model/order"
)

// bubbleWrapBuffer is the safety margin applied when converting an item's
// surface area to meters of bubble wrap.
const bubbleWrapBuffer = 1.5

// MaterialEstimator is a domain service that derives the packaging material
// requirement and box size class for an item from its category, dimensions
// and fragility level.
//
// Key responsibilities:
//   - Selecting the box tier that fits the item volume
//   - Applying category-specific material rules
//   - Sizing bubble wrap from surface area and fragility
//
// Business rules:
//   - Every estimate is seeded with one box of the fitting tier and one
//     unit of packing tape
//   - Category rules are mutually exclusive: each category produces its
//     complete adjustment, never layered on another category's
//   - Estimation is deterministic; identical inputs yield identical output
//
// Example usage:
//
//	estimator := services.NewMaterialEstimator(material.DefaultCatalog(), material.DefaultBoxTiers())
//	dims, _ := order.NewItemDimensions(30, 25, 5, 1.2)
//
//	required, boxSize, err := estimator.Estimate(order.CategoryElectronics, dims, order.FragilityHigh)
//	if err != nil {
//	    // Handle invalid input
//	}
type MaterialEstimator struct {
	catalog material.Catalog
	tiers   material.BoxTiers
}

// NewMaterialEstimator creates a MaterialEstimator over the given catalog
// and box tier table.
func NewMaterialEstimator(catalog material.Catalog, tiers material.BoxTiers) MaterialEstimator {
	return MaterialEstimator{
		catalog: catalog,
		tiers:   tiers,
	}
}

// Estimate derives the material requirement and box size class for an item.
//
// Parameters:
//   - category: The order category driving the material rules
//   - dims: Validated item dimensions
//   - fragility: Declared fragility level
//
// Returns:
//   - material.Requirement: Required materials with quantities
//   - string: The selected box tier name
//   - error: Validation error if any input is invalid
func (e MaterialEstimator) Estimate(
	category order.Category,
	dims order.ItemDimensions,
	fragility order.Fragility,
) (material.Requirement, string, error) {
	if err := category.Validate(); err != nil {
		return nil, "", err
	}
	if err := dims.Validate(); err != nil {
		return nil, "", err
	}
	if err := fragility.Validate(); err != nil {
		return nil, "", err
	}

	tier := e.tiers.TierFor(dims.Volume())
	boxKey := material.BoxKey(tier)

	required := material.Requirement{
		boxKey:               1,
		material.PackingTape: 1,
	}

	switch category {
	case order.CategoryElectronics:
		wrap := bubbleWrapMeters(dims, fragility)
		if fragility == order.FragilityMedium || fragility == order.FragilityHigh {
			required[material.FoamSheet] = 2
			required[material.FragileSticker] = 2
		}
		if fragility == order.FragilityHigh {
			// double-box and extra padding for fragile electronics
			required[boxKey] = 2
			required[material.FoamSheet] = 4
			wrap *= 1.5
		}
		required[material.BubbleWrap] = wrap

	case order.CategoryGift:
		delete(required, boxKey)
		required[material.CardboardBoxMedium] = 1
		required[material.GiftWrappingPaper] = 2
		required[material.Ribbon] = 1.5

	case order.CategoryFood:
		delete(required, boxKey)
		required[material.InsulatedBox] = 1
		required[material.CoolingPack] = 2

	case order.CategoryDocuments:
		delete(required, boxKey)
		required[material.WaterproofEnvelope] = 1
		required[material.CardboardBoxSmall] = 1

	case order.CategoryFragileItems:
		// sized as high fragility regardless of the declared level
		required[material.BubbleWrap] = bubbleWrapMeters(dims, order.FragilityHigh)
		required[material.FoamSheet] = 4
		required[material.FragileSticker] = 4
		required[boxKey] *= 2

	case order.CategoryHouseShifting:
		required[material.PackingTape] = 3
		required[material.LabelSticker] = 5
		required[material.BubbleWrap] = bubbleWrapMeters(dims, fragility)

	case order.CategoryBusinessOrders:
		required[material.BubbleWrap] = bubbleWrapMeters(dims, fragility)
		required[material.FragileSticker] = 1
	}

	return required, tier, nil
}

// Cost returns the total cost of a material requirement against the
// estimator's catalog, rounded to 2 decimal places.
func (e MaterialEstimator) Cost(required material.Requirement) float64 {
	return e.catalog.Cost(required)
}

// bubbleWrapMeters sizes bubble wrap from the item's surface area with a 50%
// buffer, scaled by the fragility factor and rounded to 1 decimal place.
func bubbleWrapMeters(dims order.ItemDimensions, fragility order.Fragility) float64 {
	base := dims.SurfaceArea() / 10000 * bubbleWrapBuffer

	factor := 1.0
	switch fragility {
	case order.FragilityMedium:
		factor = 1.5
	case order.FragilityHigh:
		factor = 2.0
	case order.FragilityLow:
	}

	return roundTo1(base * factor)
}

// roundTo1 rounds a value to 1 decimal place.
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
