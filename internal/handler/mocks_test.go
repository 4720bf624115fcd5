package handler_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockOrderCreator struct {
	mock.Mock
}

func (m *mockOrderCreator) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(entities.Order), args.Error(1)
}

type mockOrderAdmin struct {
	mock.Mock
}

func (m *mockOrderAdmin) ListOrders(ctx context.Context) ([]entities.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Order), args.Error(1)
}

func (m *mockOrderAdmin) UpdateOrder(ctx context.Context, orderID int64, patch entities.OrderPatch) error {
	args := m.Called(ctx, orderID, patch)
	return args.Error(0)
}

func (m *mockOrderAdmin) DeleteOrder(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ListPerfumes(ctx context.Context) ([]entities.Perfume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Perfume), args.Error(1)
}

func (m *mockCatalog) CreatePerfume(ctx context.Context, p entities.Perfume) (entities.Perfume, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(entities.Perfume), args.Error(1)
}

func (m *mockCatalog) UpdatePerfume(ctx context.Context, p entities.Perfume) (entities.Perfume, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(entities.Perfume), args.Error(1)
}

func (m *mockCatalog) DeletePerfume(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, cart []entities.CartItem, customer entities.Customer) entities.DispatchResult {
	args := m.Called(ctx, cart, customer)
	return args.Get(0).(entities.DispatchResult)
}
