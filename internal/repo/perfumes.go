package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type perfumesRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPerfumesRepo(db *sqlx.DB) *perfumesRepo {
	return &perfumesRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var perfumeColumns = []string{
	"id", "name", "brand", "price", "category", "volume",
	"notes", "image", "concentration", "availability",
}

func (r *perfumesRepo) ListPerfumes(ctx context.Context) ([]entities.Perfume, error) {
	query, args := r.qb.Select(perfumeColumns...).
		From("perfumes").
		OrderBy("id").
		MustSql()

	var perfumes []Perfume
	if err := r.db.SelectContext(ctx, &perfumes, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select perfumes: %w", err)
	}

	result := make([]entities.Perfume, 0, len(perfumes))
	for _, p := range perfumes {
		result = append(result, PerfumeToEntity(p))
	}
	return result, nil
}

func (r *perfumesRepo) CreatePerfume(ctx context.Context, p entities.Perfume) (entities.Perfume, error) {
	query, args := r.qb.Insert("perfumes").
		Columns("name", "brand", "price", "category", "volume",
			"notes", "image", "concentration", "availability").
		Values(
			p.Name, p.Brand, p.Price, nullString(p.Category), nullString(p.Volume),
			pq.StringArray(p.Notes), p.Image, nullString(p.Concentration), p.Availability,
		).
		Suffix("RETURNING " + returningColumns).
		MustSql()

	var created Perfume
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return entities.Perfume{}, fmt.Errorf("failed to insert perfume: %w", err)
	}
	return PerfumeToEntity(created), nil
}

func (r *perfumesRepo) UpdatePerfume(ctx context.Context, p entities.Perfume) (entities.Perfume, error) {
	query, args := r.qb.Update("perfumes").
		SetMap(map[string]any{
			"name":          p.Name,
			"brand":         p.Brand,
			"price":         p.Price,
			"category":      nullString(p.Category),
			"volume":        nullString(p.Volume),
			"notes":         pq.StringArray(p.Notes),
			"image":         p.Image,
			"concentration": nullString(p.Concentration),
			"availability":  p.Availability,
		}).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + returningColumns).
		MustSql()

	var updated Perfume
	err := r.db.GetContext(ctx, &updated, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Perfume{}, entities.ErrPerfumeNotFound
	}
	if err != nil {
		return entities.Perfume{}, fmt.Errorf("failed to update perfume: %w", err)
	}
	return PerfumeToEntity(updated), nil
}

func (r *perfumesRepo) DeletePerfume(ctx context.Context, id int64) error {
	query, args := r.qb.Delete("perfumes").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id").
		MustSql()

	var deleted int64
	err := r.db.GetContext(ctx, &deleted, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrPerfumeNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete perfume: %w", err)
	}
	return nil
}

const returningColumns = "id, name, brand, price, category, volume, notes, image, concentration, availability"
