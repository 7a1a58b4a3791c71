package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

var (
	// ErrDistanceProviderUnavailable indicates the distance provider could not
	// be reached or failed at the provider level (quota, auth, outage).
	ErrDistanceProviderUnavailable = errors.New("distance provider unavailable")

	// ErrNoRouteFound indicates the provider answered but found no route
	// between the two points. Distinct from provider unavailability.
	ErrNoRouteFound = errors.New("no route found between origin and destination")
)

// CreateOrderCommandResponse carries the outcome of a successful order creation.
type CreateOrderCommandResponse struct {
	ID       kernel.UUID
	Distance int
	Status   order.Status
}

// CreateOrderCommandHandler handles the business logic for order creation.
// It resolves the travel distance through the distance lookup port and
// persists a new order in Unassigned status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, distanceLookup)
//	cmd, _ := NewCreateOrderCommand(origin, destination)
//
//	resp, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoRouteFound):
//	    // no route between the points
//	case errors.Is(err, ErrDistanceProviderUnavailable):
//	    // provider outage
//	case err != nil:
//	    // other failure
//	default:
//	    fmt.Printf("order %s created, %d meters", resp.ID, resp.Distance)
//	}
type CreateOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	distanceLookup ports.DistanceLookup
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a
// DistanceLookup for resolving the travel distance.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, distanceLookup ports.DistanceLookup) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		distanceLookup: distanceLookup,
	}
}

// Handle processes the order creation command.
//
// The command's own validation has already rejected malformed coordinates, so
// the distance provider is only consulted for well-formed input. Exactly one
// repository insert happens on the success path and none on any failure path.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderCommandResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderCommandResponse{}, err
	}

	result, err := h.distanceLookup.Lookup(ctx, cmd.Origin(), cmd.Destination())
	if err != nil {
		return CreateOrderCommandResponse{}, fmt.Errorf("%w: %w", ErrDistanceProviderUnavailable, err)
	}
	if !result.ProviderOK {
		return CreateOrderCommandResponse{}, ErrDistanceProviderUnavailable
	}
	if !result.RouteFound {
		return CreateOrderCommandResponse{}, ErrNoRouteFound
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.Origin(), cmd.Destination(), result.Meters)
	if err != nil {
		return CreateOrderCommandResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderCommandResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderCommandResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderCommandResponse{}, err
	}

	return CreateOrderCommandResponse{
		ID:       newOrder.ID(),
		Distance: newOrder.Distance(),
		Status:   newOrder.Status(),
	}, nil
}
