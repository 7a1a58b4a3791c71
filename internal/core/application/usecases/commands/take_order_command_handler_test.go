package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustNewOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	origin, err := kernel.NewGeoPoint(22.348624, 114.064814)
	require.NoError(t, err)
	destination, err := kernel.NewGeoPoint(22.352703, 114.079926)
	require.NoError(t, err)
	o, err := order.NewOrder(id, origin, destination, 1830)
	require.NoError(t, err)
	return o
}

func TestTakeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTakeOrderCommand(id.String())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, id).Return(mustNewOrder(t, id), nil).Once(),
		repo.On("Take", mock.Anything, id).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(repo).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTakeOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TakeOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewTakeOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestTakeOrderCommandHandler_Handle_MalformedID(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewTakeOrderCommand("definitely-not-a-uuid")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewTakeOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestTakeOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTakeOrderCommand(id.String())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("orderID", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(repo).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTakeOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_Handle_AlreadyTaken(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTakeOrderCommand(id.String())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, id).Return(mustNewOrder(t, id), nil).Once(),
		repo.On("Take", mock.Anything, id).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(repo).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTakeOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrOrderAlreadyTaken)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewTakeOrderCommand(id.String())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errors.New("connection reset")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	uow.On("OrderRepository").Return(repo).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTakeOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.NotErrorIs(t, err, commands.ErrOrderNotFound)
}

// memoryOrderRepository claims orders under a single mutex, mirroring the
// atomicity the conditional database update provides in production.
type memoryOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*order.Order
}

func newMemoryOrderRepository() *memoryOrderRepository {
	return &memoryOrderRepository{orders: make(map[string]*order.Order)}
}

func (r *memoryOrderRepository) Add(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID().String()] = o
	return nil
}

func (r *memoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return o, nil
}

func (r *memoryOrderRepository) Take(_ context.Context, id kernel.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id.String()]
	if !ok || o.Status() != order.Unassigned {
		return false, nil
	}
	if err := o.Take(); err != nil {
		return false, nil
	}
	return true, nil
}

// memoryUoW is a pass-through unit of work for the in-memory repository.
type memoryUoW struct{ repo *memoryOrderRepository }

func (u memoryUoW) Begin(context.Context) error            { return nil }
func (u memoryUoW) Commit(context.Context) error           { return nil }
func (u memoryUoW) Rollback(context.Context) error         { return nil }
func (u memoryUoW) OrderRepository() ports.OrderRepository { return u.repo }

type memoryUoWFactory struct{ repo *memoryOrderRepository }

func (f memoryUoWFactory) Create() commands.OrderUoW { return memoryUoW{repo: f.repo} }

func TestTakeOrderCommandHandler_Handle_ConcurrentClaimants(t *testing.T) {
	ctx := t.Context()
	repo := newMemoryOrderRepository()

	id := kernel.NewUUID()
	require.NoError(t, repo.Add(ctx, mustNewOrder(t, id)))

	h := commands.NewTakeOrderCommandHandler(memoryUoWFactory{repo: repo})

	const claimants = 32
	results := make(chan error, claimants)

	var wg sync.WaitGroup
	for range claimants {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewTakeOrderCommand(id.String())
			if err != nil {
				results <- err
				return
			}
			results <- h.Handle(ctx, cmd)
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, lost int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, commands.ErrOrderAlreadyTaken):
			lost++
		default:
			t.Fatalf("unexpected claim error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, claimants-1, lost)

	stored, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, order.Taken, stored.Status())
}
