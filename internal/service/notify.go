package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"
	"github.com/pr-poehali-dev/perfume-shop-creation/internal/notifier"
)

type notifyService struct {
	logger *slog.Logger
	// nil означает, что канал не сконфигурирован и пропускается
	telegram notifier.Notifier
	email    notifier.Notifier
}

func NewNotifyService(logger *slog.Logger, telegram, email notifier.Notifier) *notifyService {
	return &notifyService{
		logger:   logger.With(slog.String("service", "notify")),
		telegram: telegram,
		email:    email,
	}
}

// Dispatch отправляет уведомление о заказе по обоим каналам best-effort:
// ошибки логируются и не всплывают наружу, каналы друг друга не блокируют.
func (s *notifyService) Dispatch(ctx context.Context, cart []entities.CartItem, customer entities.Customer) entities.DispatchResult {
	total := entities.CartTotal(cart)

	msg := notifier.Message{
		Subject: fmt.Sprintf("Новый заказ на сумму %s ₽", total),
		Text:    renderText(cart, customer, total),
		HTML:    renderHTML(cart, customer, total),
	}

	result := entities.DispatchResult{
		Telegram: entities.DeliverySkipped,
		Email:    entities.DeliverySkipped,
	}

	if s.telegram != nil {
		result.Telegram = entities.DeliverySent
		if err := s.telegram.Send(ctx, msg); err != nil {
			s.logger.Error("failed to send telegram notification", slog.Any("error", err))
			result.Telegram = entities.DeliveryFailed
		}
	}

	if s.email != nil {
		result.Email = entities.DeliverySent
		if err := s.email.Send(ctx, msg); err != nil {
			s.logger.Error("failed to send email notification", slog.Any("error", err))
			result.Email = entities.DeliveryFailed
		}
	}

	return result
}
