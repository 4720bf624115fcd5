package service

import (
	"context"
	"log/slog"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"
)

type PerfumeRepo interface {
	ListPerfumes(ctx context.Context) ([]entities.Perfume, error)
	CreatePerfume(ctx context.Context, p entities.Perfume) (entities.Perfume, error)
	UpdatePerfume(ctx context.Context, p entities.Perfume) (entities.Perfume, error)
	DeletePerfume(ctx context.Context, id int64) error
}

type catalogService struct {
	logger *slog.Logger
	repo   PerfumeRepo
}

func NewCatalogService(logger *slog.Logger, repo PerfumeRepo) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
	}
}

func (s *catalogService) ListPerfumes(ctx context.Context) ([]entities.Perfume, error) {
	return s.repo.ListPerfumes(ctx)
}

func (s *catalogService) CreatePerfume(ctx context.Context, p entities.Perfume) (entities.Perfume, error) {
	created, err := s.repo.CreatePerfume(ctx, p)
	if err != nil {
		return entities.Perfume{}, err
	}
	s.logger.Debug("perfume created", slog.Int64("id", created.ID), slog.String("name", created.Name))
	return created, nil
}

func (s *catalogService) UpdatePerfume(ctx context.Context, p entities.Perfume) (entities.Perfume, error) {
	return s.repo.UpdatePerfume(ctx, p)
}

func (s *catalogService) DeletePerfume(ctx context.Context, id int64) error {
	if err := s.repo.DeletePerfume(ctx, id); err != nil {
		return err
	}
	s.logger.Debug("perfume deleted", slog.Int64("id", id))
	return nil
}
