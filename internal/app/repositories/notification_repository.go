package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/pkg/logger"
)

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const notificationColumns = "id, message, url, file_url, created_by, created_on, modify_by, modify_on"

func scanNotification(row pgx.Row) (*models.Notification, error) {
	n := &models.Notification{}
	err := row.Scan(&n.ID, &n.Message, &n.URL, &n.FileURL,
		&n.CreatedBy, &n.CreatedOn, &n.ModifyBy, &n.ModifyOn)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// GetAll retrieves all notifications, newest first
func (r *NotificationRepository) GetAll(ctx context.Context) ([]*models.Notification, error) {
	sql, args, err := r.sb.Select(notificationColumns).
		From("notifications").
		OrderBy("created_on DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all notifications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all notifications query")
		return nil, fmt.Errorf("error querying notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning notification row")
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	sql, args, err := r.sb.Select(notificationColumns).
		From("notifications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get notification query: %w", err)
	}

	n, err := scanNotification(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("notificationID", id).Msg("Error scanning notification row")
		return nil, fmt.Errorf("error getting notification by ID: %w", err)
	}

	return n, nil
}

// Create inserts a new notification and returns its ID
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) (int64, error) {
	sql, args, err := r.sb.Insert("notifications").
		Columns("message", "url", "file_url", "created_by", "created_on").
		Values(n.Message, n.URL, n.FileURL, n.CreatedBy, n.CreatedOn).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create notification query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create notification query")
		return 0, fmt.Errorf("error creating notification: %w", err)
	}

	return id, nil
}

// Update rewrites a notification's mutable fields
func (r *NotificationRepository) Update(ctx context.Context, n *models.Notification) error {
	sql, args, err := r.sb.Update("notifications").
		SetMap(map[string]interface{}{
			"message":   n.Message,
			"url":       n.URL,
			"file_url":  n.FileURL,
			"modify_by": n.ModifyBy,
			"modify_on": n.ModifyOn,
		}).
		Where(squirrel.Eq{"id": n.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update notification query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("notificationID", n.ID).Msg("Error executing update notification query")
		return fmt.Errorf("error updating notification: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a notification by ID
func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("notifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete notification query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("notificationID", id).Msg("Error executing delete notification query")
		return fmt.Errorf("error deleting notification: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
