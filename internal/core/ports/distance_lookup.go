package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// DistanceResult is the normalized three-valued outcome of a distance lookup.
//
// ProviderOK reports whether the provider itself answered successfully
// (quota, auth, and service-level failures clear it). RouteFound is only
// meaningful when ProviderOK is true and reports whether a route between the
// two points exists. Meters is only meaningful when both are true, and is
// then a non-negative travel distance.
type DistanceResult struct {
	ProviderOK bool
	RouteFound bool
	Meters     int
}

// DistanceLookup translates two coordinate pairs into a travel distance via
// an external geo-routing provider.
//
// Implementations perform no retries and no coordinate-range validation;
// rejecting malformed input before invocation is the caller's responsibility,
// as is any retry policy. A transport-level failure to reach the provider is
// reported through the error return; callers treat it the same as a cleared
// ProviderOK flag.
type DistanceLookup interface {
	Lookup(ctx context.Context, origin kernel.GeoPoint, destination kernel.GeoPoint) (DistanceResult, error)
}
