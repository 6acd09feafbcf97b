package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/app/repositories"
	"github.com/campushq/backoffice/internal/pkg/apperrors"
)

// PermissionRepository is the storage surface the permission service needs
type PermissionRepository interface {
	GetPageByPath(ctx context.Context, path string) (*models.Page, error)
	GetPermission(ctx context.Context, roleID, pageID int64) (*models.Permission, error)
	GetAllPermissions(ctx context.Context) ([]*models.Permission, error)
	GetPermissionByID(ctx context.Context, id int64) (*models.Permission, error)
	UpsertPermission(ctx context.Context, p *models.Permission) (int64, error)
	UpdatePermission(ctx context.Context, p *models.Permission) error
	GetAllRoles(ctx context.Context) ([]*models.Role, error)
	GetAllPages(ctx context.Context) ([]*models.Page, error)
}

// PermissionService defines the interface for permission administration and
// access checks. Permissions are boolean flag rows keyed by (role, page);
// the Administrator role bypasses row lookups entirely.
type PermissionService interface {
	GetAllPermissions(ctx context.Context) ([]*models.Permission, error)
	GetAllRoles(ctx context.Context) ([]*models.Role, error)
	GetAllPages(ctx context.Context) ([]*models.Page, error)
	Upsert(ctx context.Context, req *dto.PermissionRequest) (*models.Permission, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePermissionRequest) (*models.Permission, error)
	Check(ctx context.Context, roleID int64, roleName, pagePath string, action models.Action) error
}

// permissionServiceImpl implements the PermissionService interface
type permissionServiceImpl struct {
	repo PermissionRepository
}

// NewPermissionService creates a new permission service instance
func NewPermissionService(repo PermissionRepository) PermissionService {
	return &permissionServiceImpl{repo: repo}
}

// GetAllPermissions retrieves the full permission table
func (s *permissionServiceImpl) GetAllPermissions(ctx context.Context) ([]*models.Permission, error) {
	permissions, err := s.repo.GetAllPermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving permissions: %w", err)
	}
	return permissions, nil
}

// GetAllRoles retrieves all roles
func (s *permissionServiceImpl) GetAllRoles(ctx context.Context) ([]*models.Role, error) {
	roles, err := s.repo.GetAllRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving roles: %w", err)
	}
	return roles, nil
}

// GetAllPages retrieves all pages
func (s *permissionServiceImpl) GetAllPages(ctx context.Context) ([]*models.Page, error) {
	pages, err := s.repo.GetAllPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving pages: %w", err)
	}
	return pages, nil
}

// Upsert creates or replaces the permission row for a (role, page) pair
func (s *permissionServiceImpl) Upsert(ctx context.Context, req *dto.PermissionRequest) (*models.Permission, error) {
	p := &models.Permission{
		RoleID:    req.RoleID,
		PageID:    req.PageID,
		CanCreate: req.CanCreate,
		CanRead:   req.CanRead,
		CanUpdate: req.CanUpdate,
		CanDelete: req.CanDelete,
	}

	id, err := s.repo.UpsertPermission(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("error saving permission: %w", err)
	}

	p.ID = id
	return p, nil
}

// Update rewrites the flags of an existing permission row by ID
func (s *permissionServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdatePermissionRequest) (*models.Permission, error) {
	p, err := s.repo.GetPermissionByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "permission not found")
	}

	p.CanCreate = req.CanCreate
	p.CanRead = req.CanRead
	p.CanUpdate = req.CanUpdate
	p.CanDelete = req.CanDelete

	if err := s.repo.UpdatePermission(ctx, p); err != nil {
		return nil, notFound(err, "permission not found")
	}

	return p, nil
}

// Check verifies that a role may perform an action on a page. Administrators
// pass unconditionally; other roles need a permission row with the matching
// flag set. A missing page or missing row denies access.
func (s *permissionServiceImpl) Check(ctx context.Context, roleID int64, roleName, pagePath string, action models.Action) error {
	if roleName == models.AdministratorRole {
		return nil
	}

	page, err := s.repo.GetPageByPath(ctx, pagePath)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrPermissionDenied
		}
		return fmt.Errorf("error resolving page %s: %w", pagePath, err)
	}

	permission, err := s.repo.GetPermission(ctx, roleID, page.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrPermissionDenied
		}
		return fmt.Errorf("error resolving permission: %w", err)
	}

	if !permission.Allows(action) {
		return apperrors.ErrPermissionDenied
	}

	return nil
}
