// Package kernel provides core domain primitives shared across the dispatch
// domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a value object for geographic coordinates in decimal degrees
//
// These primitives are immutable and thread-safe, and enforce their invariants
// at construction time so that domain objects built from them are always in a
// valid state.
package kernel
