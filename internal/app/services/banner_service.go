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

const bannerUploadDir = "banners"

// BannerRepository is the storage surface the banner service needs
type BannerRepository interface {
	GetAll(ctx context.Context) ([]*models.Banner, error)
	GetByID(ctx context.Context, id int64) (*models.Banner, error)
	Create(ctx context.Context, b *models.Banner) (int64, error)
	Update(ctx context.Context, b *models.Banner) error
	Delete(ctx context.Context, id int64) error
	ToggleVisibility(ctx context.Context, id int64, modifyBy string) error
}

// BannerService defines the interface for banner operations
type BannerService interface {
	GetAll(ctx context.Context) ([]*models.Banner, error)
	Create(ctx context.Context, req *dto.CreateBannerRequest, image *multipart.FileHeader) (*models.Banner, error)
	Update(ctx context.Context, id int64, req *dto.UpdateBannerRequest, image *multipart.FileHeader) (*models.Banner, error)
	Delete(ctx context.Context, id int64) error
	ToggleVisibility(ctx context.Context, id int64, modifyBy string) error
}

// bannerServiceImpl implements the BannerService interface
type bannerServiceImpl struct {
	repo    BannerRepository
	storage filestorage.Storage
}

// NewBannerService creates a new banner service instance
func NewBannerService(repo BannerRepository, storage filestorage.Storage) BannerService {
	return &bannerServiceImpl{
		repo:    repo,
		storage: storage,
	}
}

func validateBannerName(name string) error {
	if !validation.WithinLength(name, validation.MaxBannerNameLength) {
		return apperrors.NewValidationError(fmt.Sprintf(
			"banner name is required and must be at most %d characters", validation.MaxBannerNameLength))
	}
	return nil
}

// GetAll retrieves all banners in display order
func (s *bannerServiceImpl) GetAll(ctx context.Context) ([]*models.Banner, error) {
	banners, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving banners: %w", err)
	}
	return banners, nil
}

// Create stores the uploaded image and inserts the record. The image is
// mandatory; a banner without one is rejected before any write.
func (s *bannerServiceImpl) Create(ctx context.Context, req *dto.CreateBannerRequest, image *multipart.FileHeader) (*models.Banner, error) {
	if err := validateBannerName(req.Name); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, apperrors.NewValidationError("banner image file is required")
	}

	imageURL, err := s.storage.Save(image, bannerUploadDir)
	if err != nil {
		return nil, fmt.Errorf("error storing banner image: %w", err)
	}

	b := &models.Banner{
		Name:      req.Name,
		Position:  req.Position,
		ImageURL:  imageURL,
		IsVisible: true,
		Audit: models.Audit{
			CreatedBy: req.CreatedBy,
			CreatedOn: time.Now(),
		},
	}

	id, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("error creating banner: %w", err)
	}

	b.ID = id
	return b, nil
}

// Update rewrites a banner; an omitted image preserves the stored one
func (s *bannerServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateBannerRequest, image *multipart.FileHeader) (*models.Banner, error) {
	if err := validateBannerName(req.Name); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "banner not found")
	}

	if image != nil {
		imageURL, err := s.storage.Save(image, bannerUploadDir)
		if err != nil {
			return nil, fmt.Errorf("error storing banner image: %w", err)
		}
		if existing.ImageURL != "" {
			if err := s.storage.Delete(existing.ImageURL); err != nil {
				logger.Warn().Err(err).Int64("bannerID", id).Msg("Failed to delete replaced banner image")
			}
		}
		existing.ImageURL = imageURL
	}

	existing.Name = req.Name
	existing.Position = req.Position
	existing.Touch(req.ModifyBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, notFound(err, "banner not found")
	}

	return existing, nil
}

// Delete removes a banner and its stored image
func (s *bannerServiceImpl) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, "banner not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "banner not found")
	}

	if existing.ImageURL != "" {
		if err := s.storage.Delete(existing.ImageURL); err != nil {
			logger.Warn().Err(err).Int64("bannerID", id).Msg("Failed to delete banner image")
		}
	}

	return nil
}

// ToggleVisibility flips the published flag and stamps the actor
func (s *bannerServiceImpl) ToggleVisibility(ctx context.Context, id int64, modifyBy string) error {
	if err := s.repo.ToggleVisibility(ctx, id, modifyBy); err != nil {
		return notFound(err, "banner not found")
	}
	return nil
}
