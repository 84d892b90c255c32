// Package material holds the packaging-material reference data and the
// requirement type shared by the estimation, pricing, and dispatch services.
//
// The package includes:
//   - Catalog: fixed mapping from material name to unit and base cost
//   - BoxTiers: ordered box-size classes selected by item volume
//   - Requirement: per-order mapping from material name to required quantity
//
// Catalog and box tiers are static reference data loaded once at process
// start and passed explicitly into the services that need them, which keeps
// the tables swappable in unit tests without touching global state.
package material
