package commands

import (
	"errors"
	"fmt"
	"strconv"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new delivery order.
// It carries the origin and destination coordinates, already parsed and
// validated from the raw string pairs supplied at the API boundary.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    []string{"22.348624", "114.064814"},
//	    []string{"22.352703", "114.079926"},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	origin      kernel.GeoPoint
	destination kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command from raw coordinate pairs.
//
// Validation, in order: each sequence must have exactly two elements,
// regardless of whether the elements are numeric; then every element must
// parse as a decimal number acceptable to the kernel's GeoPoint rules.
// On any failure the command is not constructed and the distance provider
// is never consulted.
func NewCreateOrderCommand(origin []string, destination []string) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrigin(origin),
		orderCommand.setDestination(destination),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Origin returns the pickup coordinates.
func (c CreateOrderCommand) Origin() kernel.GeoPoint {
	return c.origin
}

// Destination returns the delivery coordinates.
func (c CreateOrderCommand) Destination() kernel.GeoPoint {
	return c.destination
}

func (c *CreateOrderCommand) setOrigin(raw []string) error {
	point, err := parseGeoPoint("origin", raw)
	if err != nil {
		return err
	}

	c.origin = point
	return nil
}

func (c *CreateOrderCommand) setDestination(raw []string) error {
	point, err := parseGeoPoint("destination", raw)
	if err != nil {
		return err
	}

	c.destination = point
	return nil
}

// parseGeoPoint converts a raw [latitude, longitude] string pair into a
// validated GeoPoint. The length check comes first so that a malformed pair
// is reported as such even when its elements are not numeric.
func parseGeoPoint(paramName string, raw []string) (kernel.GeoPoint, error) {
	if len(raw) != 2 {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("expected exactly 2 coordinates, got %d", len(raw)),
		)
	}

	lat, err := strconv.ParseFloat(raw[0], 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	lon, err := strconv.ParseFloat(raw[1], 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	point, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	return point, nil
}
