package packer

import (
	"packnow/internal/core/domain/model/material"
)

// Inventory maps material names to the whole units a packer has in stock.
// Inventory is treated as a value: operations that change stock return a new
// map and never mutate the receiver, so callers can safely share snapshots.
type Inventory map[string]int

// Clone returns an independent copy of the inventory.
func (inv Inventory) Clone() Inventory {
	clone := make(Inventory, len(inv))
	for name, qty := range inv {
		clone[name] = qty
	}
	return clone
}

// CanSatisfy reports whether the inventory holds enough stock for every
// material in the requirement. Materials absent from the inventory count
// as zero stock. Fractional requirements are charged in whole units.
func (inv Inventory) CanSatisfy(required material.Requirement) bool {
	for name, qty := range required {
		if inv[name] < material.WholeUnits(qty) {
			return false
		}
	}
	return true
}

// Deduct subtracts the requirement from the inventory and returns the
// resulting stock as a new map. Fractional quantities are charged in whole
// units, stock never drops below zero, and materials the inventory does not
// track are skipped rather than inserted.
func (inv Inventory) Deduct(required material.Requirement) Inventory {
	result := inv.Clone()
	for name, qty := range required {
		current, ok := result[name]
		if !ok {
			continue
		}

		remaining := current - material.WholeUnits(qty)
		if remaining < 0 {
			remaining = 0
		}
		result[name] = remaining
	}
	return result
}

// Return adds the requirement back to the inventory and returns the resulting
// stock as a new map. Unlike Deduct, materials the inventory does not track
// are inserted fresh, so cancelled orders restore every reserved material.
func (inv Inventory) Return(required material.Requirement) Inventory {
	result := inv.Clone()
	for name, qty := range required {
		result[name] += material.WholeUnits(qty)
	}
	return result
}

// IsLow reports whether any tracked material's stock is strictly below
// the given threshold.
func (inv Inventory) IsLow(threshold int) bool {
	for _, qty := range inv {
		if qty < threshold {
			return true
		}
	}
	return false
}

// LowItems returns the names of materials whose stock is strictly below
// the given threshold, with their current quantities.
func (inv Inventory) LowItems(threshold int) map[string]int {
	low := make(map[string]int)
	for name, qty := range inv {
		if qty < threshold {
			low[name] = qty
		}
	}
	return low
}
