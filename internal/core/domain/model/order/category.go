package order

import (
	"fmt"

	"packnow/internal/pkg/errs"
)

// Category identifies the packaging service category of an order.
// The category drives both material estimation rules and the pricing
// multiplier applied to the final price.
type Category string

// Packaging service categories.
const (
	CategoryGift           Category = "gift"
	CategoryElectronics    Category = "electronics"
	CategoryFood           Category = "food"
	CategoryDocuments      Category = "documents"
	CategoryBusinessOrders Category = "business_orders"
	CategoryFragileItems   Category = "fragile_items"
	CategoryHouseShifting  Category = "house_shifting"
)

// validCategories lists every recognized category for validation.
func validCategories() map[Category]struct{} {
	return map[Category]struct{}{
		CategoryGift:           {},
		CategoryElectronics:    {},
		CategoryFood:           {},
		CategoryDocuments:      {},
		CategoryBusinessOrders: {},
		CategoryFragileItems:   {},
		CategoryHouseShifting:  {},
	}
}

// Validate checks if the Category value is one of the recognized categories.
func (c Category) Validate() error {
	if _, ok := validCategories()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid",
			fmt.Errorf("%q is not a valid category", string(c)))
	}
	return nil
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// Fragility scales how much protective material an item receives.
type Fragility string

// Item fragility levels.
const (
	FragilityLow    Fragility = "low"
	FragilityMedium Fragility = "medium"
	FragilityHigh   Fragility = "high"
)

// Validate checks if the Fragility value is one of the recognized levels.
func (f Fragility) Validate() error {
	switch f {
	case FragilityLow, FragilityMedium, FragilityHigh:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("fragility is invalid",
			fmt.Errorf("%q is not a valid fragility level", string(f)))
	}
}

// String returns the fragility level name.
func (f Fragility) String() string {
	return string(f)
}

// Urgency scales the final price of an order.
type Urgency string

// Order urgency levels.
const (
	UrgencyNormal Urgency = "normal"
	UrgencyUrgent Urgency = "urgent"
)

// Validate checks if the Urgency value is one of the recognized levels.
func (u Urgency) Validate() error {
	switch u {
	case UrgencyNormal, UrgencyUrgent:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("urgency is invalid",
			fmt.Errorf("%q is not a valid urgency level", string(u)))
	}
}

// String returns the urgency level name.
func (u Urgency) String() string {
	return string(u)
}
