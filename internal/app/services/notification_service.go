package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/pkg/apperrors"
	"github.com/campushq/backoffice/internal/pkg/filestorage"
	"github.com/campushq/backoffice/internal/pkg/logger"
	"github.com/campushq/backoffice/internal/pkg/validation"
)

const notificationUploadDir = "notifications"

// NotificationRepository is the storage surface the notification service needs
type NotificationRepository interface {
	GetAll(ctx context.Context) ([]*models.Notification, error)
	GetByID(ctx context.Context, id int64) (*models.Notification, error)
	Create(ctx context.Context, n *models.Notification) (int64, error)
	Update(ctx context.Context, n *models.Notification) error
	Delete(ctx context.Context, id int64) error
}

// NotificationService defines the interface for notification operations
type NotificationService interface {
	GetAll(ctx context.Context) ([]*models.Notification, error)
	Create(ctx context.Context, req *dto.CreateNotificationRequest, file *multipart.FileHeader) (*models.Notification, error)
	Update(ctx context.Context, id int64, req *dto.UpdateNotificationRequest, file *multipart.FileHeader) (*models.Notification, error)
	Delete(ctx context.Context, id int64) error
}

// notificationServiceImpl implements the NotificationService interface
type notificationServiceImpl struct {
	repo    NotificationRepository
	storage filestorage.Storage
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(repo NotificationRepository, storage filestorage.Storage) NotificationService {
	return &notificationServiceImpl{
		repo:    repo,
		storage: storage,
	}
}

// validateNotification checks message and URL rules before any storage call
func validateNotification(message, url string) error {
	if !validation.WithinLength(message, validation.MaxNotificationMessageLength) {
		return apperrors.NewValidationError(fmt.Sprintf(
			"message is required and must be at most %d characters", validation.MaxNotificationMessageLength))
	}
	if url != "" && !validation.IsValidURL(url) {
		return apperrors.NewValidationError("url must start with http:// or https://")
	}
	return nil
}

// GetAll retrieves all notifications
func (s *notificationServiceImpl) GetAll(ctx context.Context) ([]*models.Notification, error) {
	notifications, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notifications: %w", err)
	}
	return notifications, nil
}

// Create validates the form, stores the attachment when present and inserts
// the record. A notification carries a URL or a file; the file wins when
// both are submitted.
func (s *notificationServiceImpl) Create(ctx context.Context, req *dto.CreateNotificationRequest, file *multipart.FileHeader) (*models.Notification, error) {
	if err := validateNotification(req.Message, req.URL); err != nil {
		return nil, err
	}

	fileURL, err := s.storage.Save(file, notificationUploadDir)
	if err != nil {
		return nil, fmt.Errorf("error storing notification attachment: %w", err)
	}

	n := &models.Notification{
		Message: req.Message,
		URL:     req.URL,
		FileURL: fileURL,
		Audit: models.Audit{
			CreatedBy: req.CreatedBy,
			CreatedOn: time.Now(),
		},
	}
	if n.FileURL != "" {
		n.URL = ""
	}

	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("error creating notification: %w", err)
	}

	n.ID = id
	return n, nil
}

// Update rewrites a notification; an omitted file preserves the stored one
func (s *notificationServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateNotificationRequest, file *multipart.FileHeader) (*models.Notification, error) {
	if err := validateNotification(req.Message, req.URL); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "notification not found")
	}

	if file != nil {
		fileURL, err := s.storage.Save(file, notificationUploadDir)
		if err != nil {
			return nil, fmt.Errorf("error storing notification attachment: %w", err)
		}
		if existing.FileURL != "" {
			if err := s.storage.Delete(existing.FileURL); err != nil {
				logger.Warn().Err(err).Int64("notificationID", id).Msg("Failed to delete replaced attachment")
			}
		}
		existing.FileURL = fileURL
		existing.URL = ""
	} else {
		existing.URL = req.URL
	}

	existing.Message = req.Message
	existing.Touch(req.ModifyBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, notFound(err, "notification not found")
	}

	return existing, nil
}

// Delete removes a notification and its stored attachment
func (s *notificationServiceImpl) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, "notification not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "notification not found")
	}

	if existing.FileURL != "" {
		if err := s.storage.Delete(existing.FileURL); err != nil {
			logger.Warn().Err(err).Int64("notificationID", id).Msg("Failed to delete notification attachment")
		}
	}

	return nil
}
