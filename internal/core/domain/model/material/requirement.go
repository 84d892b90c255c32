package material

import "math"

// Canonical material names used across the catalog, requirements, and
// packer inventories. Box names are derived per tier via BoxKey.
const (
	BubbleWrap         = "bubble_wrap"
	FoamSheet          = "foam_sheet"
	PackingTape        = "packing_tape"
	FragileSticker     = "fragile_sticker"
	GiftWrappingPaper  = "gift_wrapping_paper"
	Ribbon             = "ribbon"
	InsulatedBox       = "insulated_box"
	CoolingPack        = "cooling_pack"
	WaterproofEnvelope = "waterproof_envelope"
	LabelSticker       = "label_sticker"

	CardboardBoxSmall      = "cardboard_box_small"
	CardboardBoxMedium     = "cardboard_box_medium"
	CardboardBoxLarge      = "cardboard_box_large"
	CardboardBoxExtraLarge = "cardboard_box_extra_large"
)

// BoxKey returns the catalog name of the cardboard box for a given size tier,
// e.g. BoxKey("medium") == "cardboard_box_medium".
func BoxKey(tier string) string {
	return "cardboard_box_" + tier
}

// Requirement maps material names to required quantities.
// Quantities are non-negative and may be fractional: partial units such as
// meters of wrap are expressed as decimals. A Requirement is computed fresh
// per order and treated as immutable once attached to it.
type Requirement map[string]float64

// Clone returns an independent copy of the requirement.
func (r Requirement) Clone() Requirement {
	out := make(Requirement, len(r))
	for name, qty := range r {
		out[name] = qty
	}
	return out
}

// WholeUnits rounds a quantity up to whole units. Fractional requirements
// consume whole units from inventory.
func WholeUnits(qty float64) int {
	return int(math.Ceil(qty))
}

// WholeUnits returns the quantity for a material rounded up to whole units.
func (r Requirement) WholeUnits(name string) int {
	return WholeUnits(r[name])
}
