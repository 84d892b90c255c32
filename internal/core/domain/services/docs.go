// Package services implements domain services for the packaging system's
// dispatch-and-pricing core.
//
// The package contains three stateless services composed in a pipeline when
// an order is created:
//   - MaterialEstimator derives the material requirement and box size class
//     from item dimensions, category and fragility
//   - PricingEngine turns a material requirement, distance, urgency and
//     category into a price breakdown
//   - PackerDispatcher selects the nearest qualifying packer for an order
//     from a candidate snapshot
//
// All three services are pure computation over immutable inputs: no shared
// mutable state, no I/O, safe to invoke concurrently for different orders.
// Reference data (material catalog, box tiers, tariff) is passed in at
// construction rather than read from ambient globals, so tests can swap
// tables freely.
package services
