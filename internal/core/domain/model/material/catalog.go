package material

import "math"

// Unit identifies how a material is measured and billed.
type Unit string

// Material measurement units.
const (
	UnitMeters Unit = "meters"
	UnitUnits  Unit = "units"
	UnitPieces Unit = "pieces"
	UnitSheets Unit = "sheets"
)

// Spec describes a catalog entry: the unit a material is measured in and
// its base cost per unit.
type Spec struct {
	Unit     Unit
	BaseCost float64
}

// Catalog is the fixed mapping from material name to its unit and base cost.
// It is process-wide static reference data, loaded once at startup and passed
// explicitly into the services that price or estimate materials. It is never
// mutated at runtime.
type Catalog map[string]Spec

// DefaultCatalog returns the standard material catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		BubbleWrap:             {Unit: UnitMeters, BaseCost: 15.0},
		FoamSheet:              {Unit: UnitSheets, BaseCost: 10.0},
		CardboardBoxSmall:      {Unit: UnitUnits, BaseCost: 20.0},
		CardboardBoxMedium:     {Unit: UnitUnits, BaseCost: 35.0},
		CardboardBoxLarge:      {Unit: UnitUnits, BaseCost: 50.0},
		CardboardBoxExtraLarge: {Unit: UnitUnits, BaseCost: 70.0},
		PackingTape:            {Unit: UnitUnits, BaseCost: 25.0},
		FragileSticker:         {Unit: UnitPieces, BaseCost: 2.0},
		GiftWrappingPaper:      {Unit: UnitMeters, BaseCost: 20.0},
		Ribbon:                 {Unit: UnitMeters, BaseCost: 5.0},
		InsulatedBox:           {Unit: UnitUnits, BaseCost: 80.0},
		CoolingPack:            {Unit: UnitUnits, BaseCost: 15.0},
		WaterproofEnvelope:     {Unit: UnitUnits, BaseCost: 10.0},
		LabelSticker:           {Unit: UnitPieces, BaseCost: 1.0},
	}
}

// Cost totals the cost of a requirement against the catalog, rounded to
// 2 decimal places. Requirement entries that reference materials absent
// from the catalog contribute zero; an unknown material is not an error.
func (c Catalog) Cost(requirement Requirement) float64 {
	total := 0.0
	for name, qty := range requirement {
		if spec, ok := c[name]; ok {
			total += spec.BaseCost * qty
		}
	}
	return math.Round(total*100) / 100
}

// BoxTier defines a discrete box-size class and the maximum item volume
// (in cm³) it accommodates.
type BoxTier struct {
	Name      string
	MaxVolume float64
}

// BoxTiers is an ordered list of box-size classes, ascending by volume.
type BoxTiers []BoxTier

// DefaultBoxTiers returns the standard box-size classes.
func DefaultBoxTiers() BoxTiers {
	return BoxTiers{
		{Name: "small", MaxVolume: 8000},
		{Name: "medium", MaxVolume: 27000},
		{Name: "large", MaxVolume: 64000},
		{Name: "extra_large", MaxVolume: 125000},
	}
}

// TierFor selects the box tier for an item volume: the first tier whose
// maximum volume accommodates the item wins. Items larger than every tier
// fall through to extra_large.
func (t BoxTiers) TierFor(volume float64) string {
	for _, tier := range t {
		if volume <= tier.MaxVolume {
			return tier.Name
		}
	}
	return "extra_large"
}
