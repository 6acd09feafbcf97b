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

// BannerRepository handles banner database operations
type BannerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBannerRepository creates a new BannerRepository
func NewBannerRepository(db *pgxpool.Pool) *BannerRepository {
	return &BannerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const bannerColumns = "id, name, position, image_url, is_visible, created_by, created_on, modify_by, modify_on"

func scanBanner(row pgx.Row) (*models.Banner, error) {
	b := &models.Banner{}
	err := row.Scan(&b.ID, &b.Name, &b.Position, &b.ImageURL, &b.IsVisible,
		&b.CreatedBy, &b.CreatedOn, &b.ModifyBy, &b.ModifyOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetAll retrieves all banners ordered by display position
func (r *BannerRepository) GetAll(ctx context.Context) ([]*models.Banner, error) {
	sql, args, err := r.sb.Select(bannerColumns).
		From("banners").
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all banners query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all banners query")
		return nil, fmt.Errorf("error querying banners: %w", err)
	}
	defer rows.Close()

	banners := []*models.Banner{}
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning banner row")
			return nil, fmt.Errorf("error scanning banner row: %w", err)
		}
		banners = append(banners, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating banner rows: %w", err)
	}

	return banners, nil
}

// GetByID retrieves a banner by ID
func (r *BannerRepository) GetByID(ctx context.Context, id int64) (*models.Banner, error) {
	sql, args, err := r.sb.Select(bannerColumns).
		From("banners").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get banner query: %w", err)
	}

	b, err := scanBanner(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("bannerID", id).Msg("Error scanning banner row")
		return nil, fmt.Errorf("error getting banner by ID: %w", err)
	}

	return b, nil
}

// Create inserts a new banner and returns its ID
func (r *BannerRepository) Create(ctx context.Context, b *models.Banner) (int64, error) {
	sql, args, err := r.sb.Insert("banners").
		Columns("name", "position", "image_url", "is_visible", "created_by", "created_on").
		Values(b.Name, b.Position, b.ImageURL, b.IsVisible, b.CreatedBy, b.CreatedOn).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create banner query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create banner query")
		return 0, fmt.Errorf("error creating banner: %w", err)
	}

	return id, nil
}

// Update rewrites a banner's mutable fields
func (r *BannerRepository) Update(ctx context.Context, b *models.Banner) error {
	sql, args, err := r.sb.Update("banners").
		SetMap(map[string]interface{}{
			"name":      b.Name,
			"position":  b.Position,
			"image_url": b.ImageURL,
			"modify_by": b.ModifyBy,
			"modify_on": b.ModifyOn,
		}).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update banner query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("bannerID", b.ID).Msg("Error executing update banner query")
		return fmt.Errorf("error updating banner: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a banner by ID
func (r *BannerRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("banners").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete banner query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("bannerID", id).Msg("Error executing delete banner query")
		return fmt.Errorf("error deleting banner: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ToggleVisibility flips the visibility flag and stamps the actor
func (r *BannerRepository) ToggleVisibility(ctx context.Context, id int64, modifyBy string) error {
	sql, args, err := r.sb.Update("banners").
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
		logger.Error().Err(err).Int64("bannerID", id).Msg("Error executing toggle visibility query")
		return fmt.Errorf("error toggling banner visibility: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
