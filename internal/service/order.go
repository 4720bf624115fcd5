package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"
	"github.com/pr-poehali-dev/perfume-shop-creation/pkg/trm"
)

type OrderRepo interface {
	InsertOrder(ctx context.Context, o entities.Order) (int64, error)
	InsertItems(ctx context.Context, orderID int64, items []entities.OrderItem) error
	ListOrders(ctx context.Context) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, orderID int64, patch entities.OrderPatch) error
	DeleteItems(ctx context.Context, orderID int64) error
	DeleteOrder(ctx context.Context, orderID int64) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
	}
}

// CreateOrder сохраняет заказ вместе с позициями в одной транзакции.
// Если не вставилась хоть одна позиция, не остаётся и сам заказ.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	order.OrderNumber = newOrderNumber(time.Now())
	order.Status = entities.StatusPending

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.repo.InsertOrder(ctx, order)
		if err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		order.ID = id

		if err := s.repo.InsertItems(ctx, id, order.Items); err != nil {
			return fmt.Errorf("failed to save order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order created",
		slog.String("order_number", order.OrderNumber),
		slog.Int64("order_id", order.ID),
	)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx)
}

// UpdateOrder меняет только переданные поля. Пустой патч - полный no-op,
// updated_at в этом случае не трогается.
func (s *orderService) UpdateOrder(ctx context.Context, orderID int64, patch entities.OrderPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	if err := s.repo.UpdateOrder(ctx, orderID, patch); err != nil {
		return err
	}

	s.logger.Debug("order updated", slog.Int64("order_id", orderID))
	return nil
}

// DeleteOrder удаляет сначала позиции, потом сам заказ (FK на orders).
// Неизвестный id завершается успехом с нулевым эффектом.
func (s *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.DeleteItems(ctx, orderID); err != nil {
			return err
		}
		return s.repo.DeleteOrder(ctx, orderID)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("order deleted", slog.Int64("order_id", orderID))
	return nil
}

func newOrderNumber(t time.Time) string {
	return "ORD-" + t.Format("20060102-150405")
}
