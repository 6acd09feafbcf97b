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

// LinkRepository handles important-link database operations
type LinkRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLinkRepository creates a new LinkRepository
func NewLinkRepository(db *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const linkColumns = "id, logo_name, logo_url, link_url, position, is_visible, created_by, created_on, modify_by, modify_on"

func scanLink(row pgx.Row) (*models.ImportantLink, error) {
	l := &models.ImportantLink{}
	err := row.Scan(&l.ID, &l.LogoName, &l.LogoURL, &l.LinkURL, &l.Position, &l.IsVisible,
		&l.CreatedBy, &l.CreatedOn, &l.ModifyBy, &l.ModifyOn)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// GetAll retrieves all important links ordered by display position
func (r *LinkRepository) GetAll(ctx context.Context) ([]*models.ImportantLink, error) {
	sql, args, err := r.sb.Select(linkColumns).
		From("important_links").
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all links query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all links query")
		return nil, fmt.Errorf("error querying important links: %w", err)
	}
	defer rows.Close()

	links := []*models.ImportantLink{}
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning link row")
			return nil, fmt.Errorf("error scanning link row: %w", err)
		}
		links = append(links, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating link rows: %w", err)
	}

	return links, nil
}

// GetByID retrieves an important link by ID
func (r *LinkRepository) GetByID(ctx context.Context, id int64) (*models.ImportantLink, error) {
	sql, args, err := r.sb.Select(linkColumns).
		From("important_links").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get link query: %w", err)
	}

	l, err := scanLink(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("linkID", id).Msg("Error scanning link row")
		return nil, fmt.Errorf("error getting link by ID: %w", err)
	}

	return l, nil
}

// Create inserts a new important link and returns its ID
func (r *LinkRepository) Create(ctx context.Context, l *models.ImportantLink) (int64, error) {
	sql, args, err := r.sb.Insert("important_links").
		Columns("logo_name", "logo_url", "link_url", "position", "is_visible", "created_by", "created_on").
		Values(l.LogoName, l.LogoURL, l.LinkURL, l.Position, l.IsVisible, l.CreatedBy, l.CreatedOn).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create link query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create link query")
		return 0, fmt.Errorf("error creating important link: %w", err)
	}

	return id, nil
}

// Update rewrites an important link's mutable fields
func (r *LinkRepository) Update(ctx context.Context, l *models.ImportantLink) error {
	sql, args, err := r.sb.Update("important_links").
		SetMap(map[string]interface{}{
			"logo_name": l.LogoName,
			"logo_url":  l.LogoURL,
			"link_url":  l.LinkURL,
			"position":  l.Position,
			"modify_by": l.ModifyBy,
			"modify_on": l.ModifyOn,
		}).
		Where(squirrel.Eq{"id": l.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update link query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("linkID", l.ID).Msg("Error executing update link query")
		return fmt.Errorf("error updating important link: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an important link by ID
func (r *LinkRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("important_links").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete link query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("linkID", id).Msg("Error executing delete link query")
		return fmt.Errorf("error deleting important link: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ToggleVisibility flips the visibility flag and stamps the actor
func (r *LinkRepository) ToggleVisibility(ctx context.Context, id int64, modifyBy string) error {
	sql, args, err := r.sb.Update("important_links").
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
		logger.Error().Err(err).Int64("linkID", id).Msg("Error executing toggle visibility query")
		return fmt.Errorf("error toggling link visibility: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
