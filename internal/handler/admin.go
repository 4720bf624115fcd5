package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"
	"github.com/pr-poehali-dev/perfume-shop-creation/internal/middleware"
	"github.com/pr-poehali-dev/perfume-shop-creation/pkg/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderAdmin interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, orderID int64, patch entities.OrderPatch) error
	DeleteOrder(ctx context.Context, orderID int64) error
}

type AdminOrdersHandler struct {
	logger        *slog.Logger
	validate      *validator.Validate
	svc           OrderAdmin
	adminPassword string
}

func NewAdminOrdersHandler(logger *slog.Logger, svc OrderAdmin, adminPassword string) *AdminOrdersHandler {
	return &AdminOrdersHandler{
		logger:        logger.With(slog.String("handler", "admin_orders")),
		validate:      validator.New(),
		svc:           svc,
		adminPassword: adminPassword,
	}
}

func (h *AdminOrdersHandler) Init(r chi.Router) {
	r.Route("/admin/orders", func(r chi.Router) {
		r.Use(middleware.AdminAuth(h.adminPassword))
		r.Get("/", h.ListOrders)
		r.Put("/", h.UpdateOrder)
		r.Delete("/", h.DeleteOrder)
	})
}

// ListOrders возвращает все заказы с вложенными позициями, новые сверху.
// @Summary      Список заказов
// @Tags         admin
// @Security     AdminPassword
// @Success      200  {object}  map[string][]Order
// @Failure      401  {object}  httpx.ErrorResponse
// @Router       /admin/orders [get]
func (h *AdminOrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		httpx.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}

	httpx.WriteJSON(w, map[string][]Order{"orders": result}, http.StatusOK)
}

// UpdateOrder частично обновляет заказ: меняются только присланные поля.
// Неизвестный id молча проходит успешно, это задокументированное поведение.
// @Summary      Обновить заказ
// @Tags         admin
// @Security     AdminPassword
// @Param        order  body  UpdateOrderRequest  true  "Поля для обновления"
// @Success      200  {object}  SuccessResponse
// @Router       /admin/orders [put]
func (h *AdminOrdersHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateOrderRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	if err := h.svc.UpdateOrder(ctx, req.ID, UpdateOrderRequestToPatch(req)); err != nil {
		h.logger.ErrorContext(ctx, "failed to update order", slog.Any("error", err), slog.Int64("order_id", req.ID))
		httpx.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	httpx.WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}

// DeleteOrder удаляет заказ вместе с позициями.
// @Summary      Удалить заказ
// @Tags         admin
// @Security     AdminPassword
// @Param        id  query  int  true  "Идентификатор заказа"
// @Success      200  {object}  SuccessResponse
// @Router       /admin/orders [delete]
func (h *AdminOrdersHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		httpx.WriteError(w, "Missing id parameter", http.StatusBadRequest)
		return
	}
	orderID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		httpx.WriteError(w, "Invalid id parameter", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteOrder(ctx, orderID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order", slog.Any("error", err), slog.Int64("order_id", orderID))
		httpx.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	httpx.WriteJSON(w, SuccessResponse{Success: true}, http.StatusOK)
}
