// Package order provides the Order aggregate and its status state machine.
//
// Key business rules:
//   - Orders carry an origin, a destination, and a distance computed once at creation
//   - Order status follows a one-way workflow: Unassigned -> Taken
//   - At most one claim ever succeeds per order, even under concurrency; the
//     repository's atomic conditional update enforces this against storage
//
// The package follows the same constructor-guarded value object conventions as
// the kernel package, so aggregates cannot bypass validation.
package order
