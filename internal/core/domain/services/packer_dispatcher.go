package services

import (
	"errors"
	"sort"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/material"
	"packnow/internal/core/domain/model/packer"
)

// DefaultSearchRadiusKm is the search radius used when none is configured.
const DefaultSearchRadiusKm = 10.0

// ErrPackerNotFound is returned when no suitable packer qualifies for an
// order. This occurs when no candidates are provided, none are available,
// none hold sufficient inventory, or none sit within the search radius.
// Callers treat it as a valid outcome and leave the order unassigned for a
// later retry.
var ErrPackerNotFound = errors.New("packer not found")

// PackerDispatcher is a domain service responsible for selecting the optimal
// packer for an order from a candidate snapshot.
//
// Key responsibilities:
//   - Filtering candidates by availability and inventory sufficiency
//   - Ranking qualifying candidates by distance, then rating
//   - Reporting the travel distance of the selected packer
//
// Business rules:
//   - Only available packers are considered
//   - A packer must hold every required material in sufficient quantity
//   - Distance is great-circle distance, rounded to 2 decimal places
//   - Candidates beyond the search radius are excluded
//   - Nearer packers win; ties are broken by higher rating
//
// The dispatcher operates on a read snapshot: it never mutates candidates.
// Committing the inventory deduction for the selected packer is the
// caller's responsibility.
//
// Example usage:
//
//	dispatcher := services.NewPackerDispatcher(services.DefaultSearchRadiusKm)
//	selected, distanceKm, err := dispatcher.FindNearestPacker(pickup, required, candidates)
//	if errors.Is(err, services.ErrPackerNotFound) {
//	    // No qualifying packer; leave the order unassigned
//	    return
//	}
type PackerDispatcher struct {
	searchRadiusKm float64
}

// NewPackerDispatcher creates a PackerDispatcher with the given search
// radius in kilometers. A non-positive radius falls back to
// DefaultSearchRadiusKm.
func NewPackerDispatcher(searchRadiusKm float64) PackerDispatcher {
	if searchRadiusKm <= 0 {
		searchRadiusKm = DefaultSearchRadiusKm
	}

	return PackerDispatcher{searchRadiusKm: searchRadiusKm}
}

// candidate pairs a qualifying packer with its computed distance.
type candidate struct {
	packer     *packer.Packer
	distanceKm float64
}

// FindNearestPacker selects the best packer for an order.
//
// Parameters:
//   - pickup: The order's pickup location
//   - required: The material requirement the packer must satisfy
//   - candidates: Snapshot of packers to consider
//
// Returns:
//   - *packer.Packer: The selected packer
//   - float64: The packer's distance from the pickup location in km
//   - error: ErrPackerNotFound if no candidate qualifies, or validation errors
//
// Selection algorithm:
//   - Drops unavailable candidates
//   - Drops candidates whose inventory cannot satisfy the requirement
//   - Drops candidates beyond the search radius
//   - Sorts the remainder by distance ascending, rating descending
func (d PackerDispatcher) FindNearestPacker(
	pickup kernel.GeoPoint,
	required material.Requirement,
	candidates []*packer.Packer,
) (*packer.Packer, float64, error) {
	if err := pickup.Validate(); err != nil {
		return nil, 0, err
	}

	qualifying := make([]candidate, 0, len(candidates))
	for _, p := range candidates {
		if err := p.Validate(); err != nil {
			return nil, 0, err
		}

		if !p.IsAvailable() {
			continue
		}
		if !p.Inventory().CanSatisfy(required) {
			continue
		}

		distanceKm, err := pickup.DistanceTo(p.Location())
		if err != nil {
			return nil, 0, err
		}
		if distanceKm > d.searchRadiusKm {
			continue
		}

		qualifying = append(qualifying, candidate{packer: p, distanceKm: distanceKm})
	}

	if len(qualifying) == 0 {
		return nil, 0, ErrPackerNotFound
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		if qualifying[i].distanceKm != qualifying[j].distanceKm {
			return qualifying[i].distanceKm < qualifying[j].distanceKm
		}
		return qualifying[i].packer.Rating() > qualifying[j].packer.Rating()
	})

	best := qualifying[0]
	return best.packer, best.distanceKm, nil
}

// SearchRadiusKm returns the configured search radius.
func (d PackerDispatcher) SearchRadiusKm() float64 {
	return d.searchRadiusKm
}
