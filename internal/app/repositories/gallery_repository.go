package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/pkg/logger"
)

// GalleryRepository handles gallery database operations
type GalleryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const galleryColumns = "id, name, position, image_url, is_visible, created_by, created_on, modify_by, modify_on"

func scanGalleryItem(row pgx.Row) (*models.GalleryItem, error) {
	g := &models.GalleryItem{}
	err := row.Scan(&g.ID, &g.Name, &g.Position, &g.ImageURL, &g.IsVisible,
		&g.CreatedBy, &g.CreatedOn, &g.ModifyBy, &g.ModifyOn)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// GetAll retrieves all gallery items ordered by display position
func (r *GalleryRepository) GetAll(ctx context.Context) ([]*models.GalleryItem, error) {
	sql, args, err := r.sb.Select(galleryColumns).
		From("gallery_items").
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all gallery items query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all gallery items query")
		return nil, fmt.Errorf("error querying gallery items: %w", err)
	}
	defer rows.Close()

	items := []*models.GalleryItem{}
	for rows.Next() {
		g, err := scanGalleryItem(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning gallery item row")
			return nil, fmt.Errorf("error scanning gallery item row: %w", err)
		}
		items = append(items, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery item rows: %w", err)
	}

	return items, nil
}

// GetByID retrieves a gallery item by ID
func (r *GalleryRepository) GetByID(ctx context.Context, id int64) (*models.GalleryItem, error) {
	sql, args, err := r.sb.Select(galleryColumns).
		From("gallery_items").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get gallery item query: %w", err)
	}

	g, err := scanGalleryItem(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("galleryItemID", id).Msg("Error scanning gallery item row")
		return nil, fmt.Errorf("error getting gallery item by ID: %w", err)
	}

	return g, nil
}

// Create inserts a new gallery item and returns its ID
func (r *GalleryRepository) Create(ctx context.Context, g *models.GalleryItem) (int64, error) {
	sql, args, err := r.sb.Insert("gallery_items").
		Columns("name", "position", "image_url", "is_visible", "created_by", "created_on").
		Values(g.Name, g.Position, g.ImageURL, g.IsVisible, g.CreatedBy, g.CreatedOn).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create gallery item query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create gallery item query")
		return 0, fmt.Errorf("error creating gallery item: %w", err)
	}

	return id, nil
}

// Update rewrites a gallery item's mutable fields
func (r *GalleryRepository) Update(ctx context.Context, g *models.GalleryItem) error {
	sql, args, err := r.sb.Update("gallery_items").
		SetMap(map[string]interface{}{
			"name":      g.Name,
			"position":  g.Position,
			"image_url": g.ImageURL,
			"modify_by": g.ModifyBy,
			"modify_on": g.ModifyOn,
		}).
		Where(squirrel.Eq{"id": g.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update gallery item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("galleryItemID", g.ID).Msg("Error executing update gallery item query")
		return fmt.Errorf("error updating gallery item: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a gallery item by ID
func (r *GalleryRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("gallery_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete gallery item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("galleryItemID", id).Msg("Error executing delete gallery item query")
		return fmt.Errorf("error deleting gallery item: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ToggleVisibility flips the visibility flag and stamps the actor
func (r *GalleryRepository) ToggleVisibility(ctx context.Context, id int64, modifyBy string) error {
	sql, args, err := r.sb.Update("gallery_items").
		Set("is_visible", squirrel.Expr("NOT is_visible")).
		Set("modify_by", modifyBy).
		Set("modify_on", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build toggle visibility query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("galleryItemID", id).Msg("Error executing toggle visibility query")
		return fmt.Errorf("error toggling gallery item visibility: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
