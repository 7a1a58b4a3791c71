package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderNotFound indicates the claim target does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderAlreadyTaken indicates the order was claimed by someone else.
	// This is the expected outcome for every claimant that loses the race,
	// not a system fault; retrying the same order cannot succeed.
	ErrOrderAlreadyTaken = errors.New("order already taken")
)

// TakeOrderCommandHandler orchestrates the one-time claim of an order.
//
// The mutual-exclusion invariant (at most one successful claim per order,
// under any number of concurrent claimants across any number of service
// instances) rests entirely on the repository's atomic conditional update.
// The preceding read exists only to distinguish a missing order from a lost
// race in the reported error.
//
// Example:
//
//	handler := NewTakeOrderCommandHandler(uowFactory)
//	cmd, _ := NewTakeOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // no such order
//	case errors.Is(err, ErrOrderAlreadyTaken):
//	    // lost the race; try a different order
//	case err != nil:
//	    // storage failure
//	}
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTakeOrderCommandHandler creates a handler for order claim operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewTakeOrderCommandHandler(uowFactory OrderUoWFactory) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
//
// Returns ErrOrderNotFound when the identifier does not resolve to an order
// (an unparsable identifier can never name one), ErrOrderAlreadyTaken when
// the conditional update matched zero rows, and nil when this call performed
// the Unassigned -> Taken transition.
func (h TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	id, err := kernel.UUIDFromString(cmd.OrderID())
	if err != nil {
		return ErrOrderNotFound
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	if _, err = orderRepo.Get(ctx, id); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	taken, err := orderRepo.Take(ctx, id)
	if err != nil {
		return err
	}
	if !taken {
		return ErrOrderAlreadyTaken
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
