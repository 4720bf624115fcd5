package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"
	"github.com/pr-poehali-dev/perfume-shop-creation/pkg/httpx"

	"github.com/go-chi/chi/v5"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, cart []entities.CartItem, customer entities.Customer) entities.DispatchResult
}

type NotifyHandler struct {
	logger *slog.Logger
	svc    Dispatcher
}

func NewNotifyHandler(logger *slog.Logger, svc Dispatcher) *NotifyHandler {
	return &NotifyHandler{
		logger: logger.With(slog.String("handler", "notify")),
		svc:    svc,
	}
}

func (h *NotifyHandler) Init(r chi.Router) {
	r.Post("/orders/notify", h.SendNotification)
}

// SendNotification уведомляет персонал о новом заказе в Telegram и на почту.
// Сбой доставки не является ошибкой для клиента: ответ всегда 200,
// фактический исход по каналам лежит в results.
// @Summary      Уведомление о заказе
// @Tags         orders
// @Param        notification  body  NotifyRequest  true  "Корзина и данные клиента"
// @Success      200  {object}  NotifyResponse
// @Failure      400  {object}  httpx.ErrorResponse
// @Router       /orders/notify [post]
func (h *NotifyHandler) SendNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req NotifyRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	customer := NotifyCustomerToEntity(req.Customer)
	if len(req.Cart) == 0 || customer.IsEmpty() {
		httpx.WriteError(w, "Корзина или данные клиента не переданы", http.StatusBadRequest)
		return
	}

	result := h.svc.Dispatch(ctx, NotifyCartToEntity(req.Cart), customer)

	notificationResult("telegram", result.Telegram)
	notificationResult("email", result.Email)

	httpx.WriteJSON(w, NotifyResponse{
		Success: true,
		Results: NotifyResults{
			Telegram: result.Telegram == entities.DeliverySent,
			Email:    result.Email == entities.DeliverySent,
		},
		Message: "Заказ отправлен",
	}, http.StatusOK)
}
