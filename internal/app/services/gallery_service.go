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

const galleryUploadDir = "gallery"

// GalleryRepository is the storage surface the gallery service needs
type GalleryRepository interface {
	GetAll(ctx context.Context) ([]*models.GalleryItem, error)
	GetByID(ctx context.Context, id int64) (*models.GalleryItem, error)
	Create(ctx context.Context, g *models.GalleryItem) (int64, error)
	Update(ctx context.Context, g *models.GalleryItem) error
	Delete(ctx context.Context, id int64) error
	ToggleVisibility(ctx context.Context, id int64, modifyBy string) error
}

// GalleryService defines the interface for gallery operations
type GalleryService interface {
	GetAll(ctx context.Context) ([]*models.GalleryItem, error)
	Create(ctx context.Context, req *dto.CreateGalleryItemRequest, image *multipart.FileHeader) (*models.GalleryItem, error)
	Update(ctx context.Context, id int64, req *dto.UpdateGalleryItemRequest, image *multipart.FileHeader) (*models.GalleryItem, error)
	Delete(ctx context.Context, id int64) error
	ToggleVisibility(ctx context.Context, id int64, modifyBy string) error
}

// galleryServiceImpl implements the GalleryService interface
type galleryServiceImpl struct {
	repo    GalleryRepository
	storage filestorage.Storage
}

// NewGalleryService creates a new gallery service instance
func NewGalleryService(repo GalleryRepository, storage filestorage.Storage) GalleryService {
	return &galleryServiceImpl{
		repo:    repo,
		storage: storage,
	}
}

func validateGalleryName(name string) error {
	if !validation.WithinLength(name, validation.MaxGalleryNameLength) {
		return apperrors.NewValidationError(fmt.Sprintf(
			"gallery name is required and must be at most %d characters", validation.MaxGalleryNameLength))
	}
	return nil
}

// GetAll retrieves all gallery items in display order
func (s *galleryServiceImpl) GetAll(ctx context.Context) ([]*models.GalleryItem, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving gallery items: %w", err)
	}
	return items, nil
}

// Create stores the uploaded image and inserts the record. The image is
// mandatory; a gallery item without one is rejected before any write.
func (s *galleryServiceImpl) Create(ctx context.Context, req *dto.CreateGalleryItemRequest, image *multipart.FileHeader) (*models.GalleryItem, error) {
	if err := validateGalleryName(req.Name); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, apperrors.NewValidationError("gallery image file is required")
	}

	imageURL, err := s.storage.Save(image, galleryUploadDir)
	if err != nil {
		return nil, fmt.Errorf("error storing gallery image: %w", err)
	}

	g := &models.GalleryItem{
		Name:      req.Name,
		Position:  req.Position,
		ImageURL:  imageURL,
		IsVisible: true,
		Audit: models.Audit{
			CreatedBy: req.CreatedBy,
			CreatedOn: time.Now(),
		},
	}

	id, err := s.repo.Create(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("error creating gallery item: %w", err)
	}

	g.ID = id
	return g, nil
}

// Update rewrites a gallery item; an omitted image preserves the stored one
func (s *galleryServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateGalleryItemRequest, image *multipart.FileHeader) (*models.GalleryItem, error) {
	if err := validateGalleryName(req.Name); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "gallery item not found")
	}

	if image != nil {
		imageURL, err := s.storage.Save(image, galleryUploadDir)
		if err != nil {
			return nil, fmt.Errorf("error storing gallery image: %w", err)
		}
		if existing.ImageURL != "" {
			if err := s.storage.Delete(existing.ImageURL); err != nil {
				logger.Warn().Err(err).Int64("galleryItemID", id).Msg("Failed to delete replaced gallery image")
			}
		}
		existing.ImageURL = imageURL
	}

	existing.Name = req.Name
	existing.Position = req.Position
	existing.Touch(req.ModifyBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, notFound(err, "gallery item not found")
	}

	return existing, nil
}

// Delete removes a gallery item and its stored image
func (s *galleryServiceImpl) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, "gallery item not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "gallery item not found")
	}

	if existing.ImageURL != "" {
		if err := s.storage.Delete(existing.ImageURL); err != nil {
			logger.Warn().Err(err).Int64("galleryItemID", id).Msg("Failed to delete gallery image")
		}
	}

	return nil
}

// ToggleVisibility flips the published flag and stamps the actor
func (s *galleryServiceImpl) ToggleVisibility(ctx context.Context, id int64, modifyBy string) error {
	if err := s.repo.ToggleVisibility(ctx, id, modifyBy); err != nil {
		return notFound(err, "gallery item not found")
	}
	return nil
}
