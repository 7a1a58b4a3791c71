package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root of the dispatch domain. It is created once with
// an origin, a destination, and the travel distance between them, and then
// transitions exactly once from Unassigned to Taken when a client claims it.
//
// Invariants:
//   - id, origin, and destination are valid and immutable
//   - distance is a non-negative number of meters, computed once at creation
//   - status transitions only Unassigned -> Taken, never back
//
// The actual mutual exclusion of concurrent claims is enforced by the
// repository's conditional update; the aggregate's Take method mirrors the
// same rule for in-memory state.
type Order struct {
	id          kernel.UUID
	origin      kernel.GeoPoint
	destination kernel.GeoPoint
	distance    int
	status      Status

	isConstructed bool
}

// NewOrder creates a new Order in Unassigned status.
//
// Parameters:
//   - id: unique identifier for the order
//   - origin, destination: validated geographic coordinates
//   - distance: travel distance in meters (must be >= 0)
//
// Returns a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, origin kernel.GeoPoint, destination kernel.GeoPoint, distance int) (*Order, error) {
	order := &Order{
		status:        Unassigned,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrigin(origin),
		order.setDestination(destination),
		order.setDistance(distance),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit status.
// Unlike NewOrder it accepts any valid status, so taken orders can be rebuilt.
func RestoreOrder(
	id kernel.UUID,
	origin kernel.GeoPoint,
	destination kernel.GeoPoint,
	distance int,
	status Status,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order, err := NewOrder(id, origin, destination, distance)
	if err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Origin returns the pickup coordinates.
func (o *Order) Origin() kernel.GeoPoint {
	return o.origin
}

// Destination returns the delivery coordinates.
func (o *Order) Destination() kernel.GeoPoint {
	return o.destination
}

// Distance returns the travel distance in meters.
func (o *Order) Distance() int {
	return o.distance
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Take claims the order, transitioning it from Unassigned to Taken.
// Returns an error if the order is not in Unassigned status. This method
// covers in-memory state only; against shared storage the repository's
// conditional update is the serialization point.
func (o *Order) Take() error {
	newStatus, err := o.status.Take()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrigin(origin kernel.GeoPoint) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	o.origin = origin
	return nil
}

func (o *Order) setDestination(destination kernel.GeoPoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setDistance(distance int) error {
	if distance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%d is negative", distance))
	}
	o.distance = distance
	return nil
}
