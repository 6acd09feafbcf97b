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

const linkLogoUploadDir = "links"

// LinkRepository is the storage surface the link service needs
type LinkRepository interface {
	GetAll(ctx context.Context) ([]*models.ImportantLink, error)
	GetByID(ctx context.Context, id int64) (*models.ImportantLink, error)
	Create(ctx context.Context, l *models.ImportantLink) (int64, error)
	Update(ctx context.Context, l *models.ImportantLink) error
	Delete(ctx context.Context, id int64) error
	ToggleVisibility(ctx context.Context, id int64, modifyBy string) error
}

// LinkService defines the interface for important-link operations
type LinkService interface {
	GetAll(ctx context.Context) ([]*models.ImportantLink, error)
	Create(ctx context.Context, req *dto.CreateImportantLinkRequest, logo *multipart.FileHeader) (*models.ImportantLink, error)
	Update(ctx context.Context, id int64, req *dto.UpdateImportantLinkRequest, logo *multipart.FileHeader) (*models.ImportantLink, error)
	Delete(ctx context.Context, id int64) error
	ToggleVisibility(ctx context.Context, id int64, modifyBy string) error
}

// linkServiceImpl implements the LinkService interface
type linkServiceImpl struct {
	repo    LinkRepository
	storage filestorage.Storage
}

// NewLinkService creates a new link service instance
func NewLinkService(repo LinkRepository, storage filestorage.Storage) LinkService {
	return &linkServiceImpl{
		repo:    repo,
		storage: storage,
	}
}

// validateLink checks name and URL rules. The destination URL accepts bare
// domains and IPs without a protocol since links are often pasted that way.
func validateLink(logoName, linkURL string) error {
	if !validation.WithinLength(logoName, validation.MaxLinkNameLength) {
		return apperrors.NewValidationError(fmt.Sprintf(
			"link name is required and must be at most %d characters", validation.MaxLinkNameLength))
	}
	if !validation.WithinLength(linkURL, validation.MaxLinkURLLength) {
		return apperrors.NewValidationError(fmt.Sprintf(
			"link URL is required and must be at most %d characters", validation.MaxLinkURLLength))
	}
	if !validation.IsValidLooseURL(linkURL) {
		return apperrors.NewValidationError("link URL must be a valid web address")
	}
	return nil
}

// GetAll retrieves all important links in display order
func (s *linkServiceImpl) GetAll(ctx context.Context) ([]*models.ImportantLink, error) {
	links, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving important links: %w", err)
	}
	return links, nil
}

// Create validates the form, stores the logo when uploaded and inserts the
// record. An uploaded logo file takes precedence over a submitted logo URL.
func (s *linkServiceImpl) Create(ctx context.Context, req *dto.CreateImportantLinkRequest, logo *multipart.FileHeader) (*models.ImportantLink, error) {
	if err := validateLink(req.LogoName, req.LinkURL); err != nil {
		return nil, err
	}

	logoURL := req.LogoURL
	if logo != nil {
		savedURL, err := s.storage.Save(logo, linkLogoUploadDir)
		if err != nil {
			return nil, fmt.Errorf("error storing link logo: %w", err)
		}
		logoURL = savedURL
	}

	l := &models.ImportantLink{
		LogoName:  req.LogoName,
		LogoURL:   logoURL,
		LinkURL:   req.LinkURL,
		Position:  req.Position,
		IsVisible: true,
		Audit: models.Audit{
			CreatedBy: req.CreatedBy,
			CreatedOn: time.Now(),
		},
	}

	id, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("error creating important link: %w", err)
	}

	l.ID = id
	return l, nil
}

// Update rewrites a link; an omitted logo file preserves the stored logo URL
func (s *linkServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateImportantLinkRequest, logo *multipart.FileHeader) (*models.ImportantLink, error) {
	if err := validateLink(req.LogoName, req.LinkURL); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "important link not found")
	}

	if logo != nil {
		savedURL, err := s.storage.Save(logo, linkLogoUploadDir)
		if err != nil {
			return nil, fmt.Errorf("error storing link logo: %w", err)
		}
		if existing.LogoURL != "" {
			if err := s.storage.Delete(existing.LogoURL); err != nil {
				logger.Warn().Err(err).Int64("linkID", id).Msg("Failed to delete replaced link logo")
			}
		}
		existing.LogoURL = savedURL
	} else if req.LogoURL != "" {
		existing.LogoURL = req.LogoURL
	}

	existing.LogoName = req.LogoName
	existing.LinkURL = req.LinkURL
	existing.Position = req.Position
	existing.Touch(req.ModifyBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, notFound(err, "important link not found")
	}

	return existing, nil
}

// Delete removes a link and its stored logo
func (s *linkServiceImpl) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, "important link not found")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "important link not found")
	}

	if existing.LogoURL != "" {
		if err := s.storage.Delete(existing.LogoURL); err != nil {
			logger.Warn().Err(err).Int64("linkID", id).Msg("Failed to delete link logo")
		}
	}

	return nil
}

// ToggleVisibility flips the published flag and stamps the actor
func (s *linkServiceImpl) ToggleVisibility(ctx context.Context, id int64, modifyBy string) error {
	if err := s.repo.ToggleVisibility(ctx, id, modifyBy); err != nil {
		return notFound(err, "important link not found")
	}
	return nil
}
