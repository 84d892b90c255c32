package order

import (
	"errors"
	"fmt"
	"math"

	"packnow/internal/pkg/errs"
	"packnow/internal/pkg/guard"
)

// ErrPriceBreakdownIsNotConstructed is returned when attempting to use an
// improperly initialized PriceBreakdown value.
var ErrPriceBreakdownIsNotConstructed = errs.NewValueIsRequiredError(
	"price breakdown must be created via NewPriceBreakdown constructor")

// PriceBreakdown is the immutable result of a pricing computation.
// All monetary fields are rounded to 2 decimal places independently, and the
// breakdown holds the invariant:
//
//	finalPrice == round((basePrice + distanceCharge) × urgencyMultiplier × categoryMultiplier, 2)
//
// A breakdown is computed fresh per order and replaced wholesale when the
// order transitions from provisional to actual-distance pricing.
type PriceBreakdown struct { //nolint:recvcheck //using for validation
	basePrice          float64
	materialCost       float64
	distanceCharge     float64
	urgencyMultiplier  float64
	categoryMultiplier float64
	finalPrice         float64

	guard guard.ConstructorGuard
}

// NewPriceBreakdown creates a validated price breakdown.
// Monetary components must be non-negative, multipliers must be positive,
// and the final price must equal the rounded product of its parts.
func NewPriceBreakdown(
	basePrice float64,
	materialCost float64,
	distanceCharge float64,
	urgencyMultiplier float64,
	categoryMultiplier float64,
	finalPrice float64,
) (PriceBreakdown, error) {
	breakdown := PriceBreakdown{
		basePrice:          basePrice,
		materialCost:       materialCost,
		distanceCharge:     distanceCharge,
		urgencyMultiplier:  urgencyMultiplier,
		categoryMultiplier: categoryMultiplier,
		finalPrice:         finalPrice,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		nonNegative("basePrice is invalid", basePrice),
		nonNegative("materialCost is invalid", materialCost),
		nonNegative("distanceCharge is invalid", distanceCharge),
		positive("urgencyMultiplier is invalid", urgencyMultiplier),
		positive("categoryMultiplier is invalid", categoryMultiplier),
	); err != nil {
		return PriceBreakdown{}, err
	}

	expected := math.Round((basePrice+distanceCharge)*urgencyMultiplier*categoryMultiplier*100) / 100
	if math.Abs(expected-finalPrice) > 1e-9 {
		return PriceBreakdown{}, errs.NewValueIsInvalidErrorWithCause("finalPrice is invalid",
			fmt.Errorf("%.2f does not match computed total %.2f", finalPrice, expected))
	}

	return breakdown, nil
}

// Validate checks if the PriceBreakdown was constructed via NewPriceBreakdown.
func (p PriceBreakdown) Validate() error {
	return p.guard.Validate(ErrPriceBreakdownIsNotConstructed)
}

// BasePrice returns the material cost plus the base packing fee.
func (p PriceBreakdown) BasePrice() float64 {
	return p.basePrice
}

// MaterialCost returns the total cost of required materials.
func (p PriceBreakdown) MaterialCost() float64 {
	return p.materialCost
}

// DistanceCharge returns the distance-proportional charge.
func (p PriceBreakdown) DistanceCharge() float64 {
	return p.distanceCharge
}

// UrgencyMultiplier returns the multiplier applied for urgent orders.
func (p PriceBreakdown) UrgencyMultiplier() float64 {
	return p.urgencyMultiplier
}

// CategoryMultiplier returns the category-specific price multiplier.
func (p PriceBreakdown) CategoryMultiplier() float64 {
	return p.categoryMultiplier
}

// FinalPrice returns the total price charged for the order.
func (p PriceBreakdown) FinalPrice() float64 {
	return p.finalPrice
}

func nonNegative(name string, value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%v is negative", value))
	}
	return nil
}

func positive(name string, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%v is not greater than 0", value))
	}
	return nil
}
