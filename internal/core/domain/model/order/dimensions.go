package order

import (
	"errors"
	"fmt"

	"packnow/internal/pkg/errs"
	"packnow/internal/pkg/guard"
)

// ErrItemDimensionsAreNotConstructed is returned when attempting to use an
// improperly initialized ItemDimensions value.
var ErrItemDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"item dimensions must be created via NewItemDimensions constructor")

// ItemDimensions describes the physical size and weight of the item to be
// packaged. Lengths are in centimeters, weight in kilograms; every component
// must be strictly positive. ItemDimensions is an immutable value object.
//
// Example:
//
//	dims, err := order.NewItemDimensions(30, 25, 5, 1.2)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(dims.Volume()) // Output: 3750
type ItemDimensions struct { //nolint:recvcheck //using for validation
	length float64
	width  float64
	height float64
	weight float64

	guard guard.ConstructorGuard
}

// NewItemDimensions creates validated item dimensions.
// All four components must be greater than zero; violations are aggregated
// into a single error.
func NewItemDimensions(length, width, height, weight float64) (ItemDimensions, error) {
	dims := ItemDimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dims.setPositive(&dims.length, "length is invalid", length),
		dims.setPositive(&dims.width, "width is invalid", width),
		dims.setPositive(&dims.height, "height is invalid", height),
		dims.setPositive(&dims.weight, "weight is invalid", weight),
	); err != nil {
		return ItemDimensions{}, err
	}

	return dims, nil
}

// Validate checks if the ItemDimensions were constructed via NewItemDimensions.
func (d ItemDimensions) Validate() error {
	return d.guard.Validate(ErrItemDimensionsAreNotConstructed)
}

// Length returns the item length in centimeters.
func (d ItemDimensions) Length() float64 {
	return d.length
}

// Width returns the item width in centimeters.
func (d ItemDimensions) Width() float64 {
	return d.width
}

// Height returns the item height in centimeters.
func (d ItemDimensions) Height() float64 {
	return d.height
}

// Weight returns the item weight in kilograms.
func (d ItemDimensions) Weight() float64 {
	return d.weight
}

// Volume returns the item volume in cubic centimeters.
func (d ItemDimensions) Volume() float64 {
	return d.length * d.width * d.height
}

// SurfaceArea returns the total surface area of the item's bounding cuboid
// in square centimeters: 2×(l·w + w·h + h·l).
func (d ItemDimensions) SurfaceArea() float64 {
	return 2 * (d.length*d.width + d.width*d.height + d.height*d.length)
}

// setPositive assigns a dimension component after validating it is > 0.
func (d *ItemDimensions) setPositive(field *float64, name string, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%v is not greater than 0", value))
	}

	*field = value
	return nil
}
