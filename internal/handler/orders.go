package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"
	"github.com/pr-poehali-dev/perfume-shop-creation/pkg/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
}

type OrdersHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderCreator
}

func NewOrdersHandler(logger *slog.Logger, svc OrderCreator) *OrdersHandler {
	return &OrdersHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrdersHandler) Init(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
}

// CreateOrder сохраняет заказ покупателя.
// @Summary      Оформить заказ
// @Description  Транзакционно сохраняет заказ с позициями корзины и возвращает номер заказа
// @Tags         orders
// @Accept       json
// @Param        order  body  CreateOrderRequest  true  "Данные заказа"
// @Success      200  {object}  CreateOrderResponse
// @Failure      400  {object}  httpx.ValidationErrorResponse
// @Failure      500  {object}  httpx.ErrorResponse
// @Router       /orders [post]
func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateOrderRequestToEntity(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		ordersFailed.Inc()
		httpx.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ordersCreated.Inc()
	httpx.WriteJSON(w, CreateOrderResponse{
		Success:     true,
		OrderNumber: order.OrderNumber,
		OrderID:     order.ID,
	}, http.StatusOK)
}
