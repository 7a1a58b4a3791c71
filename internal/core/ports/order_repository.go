package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store behind this interface exclusively owns persisted order state;
// callers never cache aggregates across requests.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Take atomically transitions the order with the given id from Unassigned
	// to Taken. The implementation MUST execute the compare-and-set as a single
	// indivisible operation against the store (one conditional write); a
	// caller-side read-then-write pair is not acceptable, because concurrent
	// claimants may both have observed Unassigned moments earlier.
	//
	// Returns true if this call performed the transition, false if the order
	// was not in Unassigned status anymore (the expected outcome for every
	// claimant that loses the race). A missing order also yields false.
	Take(ctx context.Context, id kernel.UUID) (bool, error)
}
