package services

import (
	"context"
	"encoding/json"
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

const (
	facultyPhotoUploadDir    = "faculty/photos"
	facultyDocumentUploadDir = "faculty/documents"
)

// FacultyRepository is the storage surface the faculty service needs
type FacultyRepository interface {
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	Create(ctx context.Context, f *models.Faculty) (int64, error)
	Update(ctx context.Context, f *models.Faculty) error
	Delete(ctx context.Context, id int64) error
	ToggleVisibility(ctx context.Context, id int64, modifyBy string) error
}

// FacultyService defines the interface for faculty profile operations
type FacultyService interface {
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	Create(ctx context.Context, req *dto.CreateFacultyRequest, photo *multipart.FileHeader, docFiles []*multipart.FileHeader) (*models.Faculty, error)
	Update(ctx context.Context, id int64, req *dto.UpdateFacultyRequest, photo *multipart.FileHeader, docFiles []*multipart.FileHeader) (*models.Faculty, error)
	Delete(ctx context.Context, id int64) error
	ToggleVisibility(ctx context.Context, id int64, modifyBy string) error
	UpdateDocumentTitle(ctx context.Context, id int64, req *dto.UpdateDocumentTitleRequest) (*models.Faculty, error)
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	repo    FacultyRepository
	storage filestorage.Storage
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(repo FacultyRepository, storage filestorage.Storage) FacultyService {
	return &facultyServiceImpl{
		repo:    repo,
		storage: storage,
	}
}

func validateFacultyName(name string) error {
	if !validation.WithinLength(name, validation.MaxFacultyNameLength) {
		return apperrors.NewValidationError(fmt.Sprintf(
			"faculty name is required and must be at most %d characters", validation.MaxFacultyNameLength))
	}
	return nil
}

// parseDocumentTitles decodes the JSON-encoded title array submitted with
// document uploads. The title count must match the file count so each
// document keeps its label.
func parseDocumentTitles(raw string, fileCount int) ([]string, error) {
	if raw == "" {
		if fileCount > 0 {
			return nil, apperrors.NewValidationError("documentTitles is required when document files are uploaded")
		}
		return []string{}, nil
	}

	var titles []string
	if err := json.Unmarshal([]byte(raw), &titles); err != nil {
		return nil, apperrors.NewValidationError("documentTitles must be a JSON array of strings")
	}
	if len(titles) != fileCount {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"documentTitles holds %d titles but %d document files were uploaded", len(titles), fileCount))
	}
	for _, t := range titles {
		if t == "" {
			return nil, apperrors.NewValidationError("document titles must not be empty")
		}
	}
	return titles, nil
}

// saveDocuments stores each uploaded document file and pairs it with its title
func (s *facultyServiceImpl) saveDocuments(titles []string, files []*multipart.FileHeader) (models.Documents, error) {
	docs := models.Documents{}
	for i, fh := range files {
		url, err := s.storage.Save(fh, facultyDocumentUploadDir)
		if err != nil {
			return nil, fmt.Errorf("error storing faculty document: %w", err)
		}
		docs = append(docs, models.Document{Title: titles[i], URL: url})
	}
	return docs, nil
}

// GetAll retrieves all faculty members
func (s *facultyServiceImpl) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	members, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty members: %w", err)
	}
	return members, nil
}

// Create validates the form, stores the photo and documents and inserts the
// record. The document list is capped at MaxFacultyDocuments.
func (s *facultyServiceImpl) Create(ctx context.Context, req *dto.CreateFacultyRequest, photo *multipart.FileHeader, docFiles []*multipart.FileHeader) (*models.Faculty, error) {
	if err := validateFacultyName(req.Name); err != nil {
		return nil, err
	}

	titles, err := parseDocumentTitles(req.DocumentTitles, len(docFiles))
	if err != nil {
		return nil, err
	}
	if len(docFiles) > models.MaxFacultyDocuments {
		return nil, apperrors.ErrDocumentLimitExceeded
	}

	photoURL, err := s.storage.Save(photo, facultyPhotoUploadDir)
	if err != nil {
		return nil, fmt.Errorf("error storing faculty photo: %w", err)
	}

	docs, err := s.saveDocuments(titles, docFiles)
	if err != nil {
		return nil, err
	}

	f := &models.Faculty{
		Name:          req.Name,
		Qualification: req.Qualification,
		Designation:   req.Designation,
		PhotoURL:      photoURL,
		Documents:     docs,
		MonthlySalary: req.MonthlySalary,
		YearlyLeave:   req.YearlyLeave,
		IsVisible:     true,
		Audit: models.Audit{
			CreatedBy: req.CreatedBy,
			CreatedOn: time.Now(),
		},
	}

	id, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error creating faculty member: %w", err)
	}

	f.ID = id
	return f, nil
}

// Update rewrites a faculty member. Hidden members must be made visible
// before editing. An omitted photo preserves the stored one; uploaded
// documents are appended to the existing list up to the cap.
func (s *facultyServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateFacultyRequest, photo *multipart.FileHeader, docFiles []*multipart.FileHeader) (*models.Faculty, error) {
	if err := validateFacultyName(req.Name); err != nil {
		return nil, err
	}

	titles, err := parseDocumentTitles(req.DocumentTitles, len(docFiles))
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "faculty member not found")
	}
	if !existing.IsVisible {
		return nil, apperrors.ErrFacultyHidden
	}

	if len(existing.Documents)+len(docFiles) > models.MaxFacultyDocuments {
		return nil, apperrors.ErrDocumentLimitExceeded
	}

	if photo != nil {
		photoURL, err := s.storage.Save(photo, facultyPhotoUploadDir)
		if err != nil {
			return nil, fmt.Errorf("error storing faculty photo: %w", err)
		}
		if existing.PhotoURL != "" {
			if err := s.storage.Delete(existing.PhotoURL); err != nil {
				logger.Warn().Err(err).Int64("facultyID", id).Msg("Failed to delete replaced faculty photo")
			}
		}
		existing.PhotoURL = photoURL
	}

	if len(docFiles) > 0 {
		docs, err := s.saveDocuments(titles, docFiles)
		if err != nil {
			return nil, err
		}
		existing.Documents = append(existing.Documents, docs...)
	}

	existing.Name = req.Name
	existing.Qualification = req.Qualification
	existing.Designation = req.Designation
	existing.MonthlySalary = req.MonthlySalary
	existing.YearlyLeave = req.YearlyLeave
	existing.Touch(req.ModifyBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, notFound(err, "faculty member not found")
	}

	return existing, nil
}

// Delete removes a faculty member with its photo and documents. Hidden
// members must be made visible before deletion.
func (s *facultyServiceImpl) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return notFound(err, "faculty member not found")
	}
	if !existing.IsVisible {
		return apperrors.ErrFacultyHidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "faculty member not found")
	}

	if existing.PhotoURL != "" {
		if err := s.storage.Delete(existing.PhotoURL); err != nil {
			logger.Warn().Err(err).Int64("facultyID", id).Msg("Failed to delete faculty photo")
		}
	}
	for _, doc := range existing.Documents {
		if err := s.storage.Delete(doc.URL); err != nil {
			logger.Warn().Err(err).Int64("facultyID", id).Str("document", doc.Title).Msg("Failed to delete faculty document")
		}
	}

	return nil
}

// ToggleVisibility flips the published flag and stamps the actor
func (s *facultyServiceImpl) ToggleVisibility(ctx context.Context, id int64, modifyBy string) error {
	if err := s.repo.ToggleVisibility(ctx, id, modifyBy); err != nil {
		return notFound(err, "faculty member not found")
	}
	return nil
}

// UpdateDocumentTitle renames one document in the list by index
func (s *facultyServiceImpl) UpdateDocumentTitle(ctx context.Context, id int64, req *dto.UpdateDocumentTitleRequest) (*models.Faculty, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "faculty member not found")
	}
	if !existing.IsVisible {
		return nil, apperrors.ErrFacultyHidden
	}

	if req.DocIndex < 0 || req.DocIndex >= len(existing.Documents) {
		return nil, apperrors.ErrDocumentIndexOutOfRange
	}

	existing.Documents[req.DocIndex].Title = req.NewTitle
	existing.Touch(req.ModifyBy)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, notFound(err, "faculty member not found")
	}

	return existing, nil
}
