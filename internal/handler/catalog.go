package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"
	"github.com/pr-poehali-dev/perfume-shop-creation/pkg/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Catalog interface {
	ListPerfumes(ctx context.Context) ([]entities.Perfume, error)
	CreatePerfume(ctx context.Context, p entities.Perfume) (entities.Perfume, error)
	UpdatePerfume(ctx context.Context, p entities.Perfume) (entities.Perfume, error)
	DeletePerfume(ctx context.Context, id int64) error
}

type CatalogHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      Catalog
}

func NewCatalogHandler(logger *slog.Logger, svc Catalog) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger.With(slog.String("handler", "catalog")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Get("/perfumes", h.ListPerfumes)

	r.Route("/perfumes/admin", func(r chi.Router) {
		r.Post("/", h.CreatePerfume)
		r.Put("/", h.UpdatePerfume)
		r.Delete("/", h.DeletePerfume)
	})
}

// ListPerfumes отдаёт витрине весь каталог плоским массивом.
// @Summary      Каталог парфюмерии
// @Tags         catalog
// @Success      200  {array}  Perfume
// @Router       /perfumes [get]
func (h *CatalogHandler) ListPerfumes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	perfumes, err := h.svc.ListPerfumes(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list perfumes", slog.Any("error", err))
		httpx.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	result := make([]Perfume, 0, len(perfumes))
	for _, p := range perfumes {
		result = append(result, PerfumeEntityToJSON(p))
	}

	httpx.WriteJSON(w, result, http.StatusOK)
}

// CreatePerfume добавляет позицию каталога.
// @Summary      Создать товар
// @Tags         catalog
// @Param        perfume  body  Perfume  true  "Товар"
// @Success      201  {object}  Perfume
// @Router       /perfumes/admin [post]
func (h *CatalogHandler) CreatePerfume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Perfume
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	created, err := h.svc.CreatePerfume(ctx, PerfumeJSONToEntity(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create perfume", slog.Any("error", err))
		httpx.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	httpx.WriteJSON(w, PerfumeEntityToJSON(created), http.StatusCreated)
}

// UpdatePerfume полностью перезаписывает товар по id.
// @Summary      Обновить товар
// @Tags         catalog
// @Param        perfume  body  Perfume  true  "Товар"
// @Success      200  {object}  Perfume
// @Failure      404  {object}  httpx.ErrorResponse
// @Router       /perfumes/admin [put]
func (h *CatalogHandler) UpdatePerfume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req Perfume
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, err)
		return
	}

	updated, err := h.svc.UpdatePerfume(ctx, PerfumeJSONToEntity(req))
	if errors.Is(err, entities.ErrPerfumeNotFound) {
		httpx.WriteError(w, "Perfume not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update perfume", slog.Any("error", err), slog.Int64("id", req.ID))
		httpx.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	httpx.WriteJSON(w, PerfumeEntityToJSON(updated), http.StatusOK)
}

// DeletePerfume удаляет товар, id передаётся query-параметром.
// @Summary      Удалить товар
// @Tags         catalog
// @Param        id  query  int  true  "Идентификатор товара"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  httpx.ErrorResponse
// @Router       /perfumes/admin [delete]
func (h *CatalogHandler) DeletePerfume(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		httpx.WriteError(w, "Missing id parameter", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		httpx.WriteError(w, "Invalid id parameter", http.StatusBadRequest)
		return
	}

	err = h.svc.DeletePerfume(ctx, id)
	if errors.Is(err, entities.ErrPerfumeNotFound) {
		httpx.WriteError(w, "Perfume not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete perfume", slog.Any("error", err), slog.Int64("id", id))
		httpx.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	httpx.WriteJSON(w, map[string]any{"success": true, "id": id}, http.StatusOK)
}
