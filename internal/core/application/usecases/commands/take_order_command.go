package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand represents a request to claim an order. It carries the
// raw order identifier as received at the API boundary; resolution against
// the store happens in the handler.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewTakeOrderCommand creates a command to claim the order with the given
// identifier. The identifier must be non-empty.
func NewTakeOrderCommand(orderID string) (TakeOrderCommand, error) {
	takeCommand := TakeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := takeCommand.setOrderID(orderID); err != nil {
		return TakeOrderCommand{}, err
	}

	return takeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTakeOrderCommandIsNotConstructed if validation fails.
func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

// OrderID returns the raw order identifier.
func (c TakeOrderCommand) OrderID() string {
	return c.orderID
}

func (c *TakeOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}

	c.orderID = orderID
	return nil
}
