package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/app/repositories"
	"github.com/campushq/backoffice/internal/pkg/apperrors"
)

type fakePermissionRepo struct {
	pages       map[string]*models.Page
	permissions map[[2]int64]*models.Permission
	nextID      int64
}

func newFakePermissionRepo() *fakePermissionRepo {
	return &fakePermissionRepo{
		pages:       map[string]*models.Page{},
		permissions: map[[2]int64]*models.Permission{},
	}
}

func (r *fakePermissionRepo) addPage(id int64, name, path string) {
	r.pages[path] = &models.Page{ID: id, Name: name, Path: path}
}

func (r *fakePermissionRepo) GetPageByPath(ctx context.Context, path string) (*models.Page, error) {
	p, ok := r.pages[path]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return p, nil
}

func (r *fakePermissionRepo) GetPermission(ctx context.Context, roleID, pageID int64) (*models.Permission, error) {
	p, ok := r.permissions[[2]int64{roleID, pageID}]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return p, nil
}

func (r *fakePermissionRepo) GetAllPermissions(ctx context.Context) ([]*models.Permission, error) {
	out := []*models.Permission{}
	for _, p := range r.permissions {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePermissionRepo) UpsertPermission(ctx context.Context, p *models.Permission) (int64, error) {
	key := [2]int64{p.RoleID, p.PageID}
	if existing, ok := r.permissions[key]; ok {
		p.ID = existing.ID
	} else {
		r.nextID++
		p.ID = r.nextID
	}
	cp := *p
	r.permissions[key] = &cp
	return p.ID, nil
}

func (r *fakePermissionRepo) GetPermissionByID(ctx context.Context, id int64) (*models.Permission, error) {
	for _, p := range r.permissions {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePermissionRepo) UpdatePermission(ctx context.Context, p *models.Permission) error {
	for key, existing := range r.permissions {
		if existing.ID == p.ID {
			cp := *p
			r.permissions[key] = &cp
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *fakePermissionRepo) GetAllRoles(ctx context.Context) ([]*models.Role, error) {
	return []*models.Role{{ID: 1, Name: models.AdministratorRole}}, nil
}

func (r *fakePermissionRepo) GetAllPages(ctx context.Context) ([]*models.Page, error) {
	out := []*models.Page{}
	for _, p := range r.pages {
		out = append(out, p)
	}
	return out, nil
}

func TestPermissionUpdateRewritesFlags(t *testing.T) {
	repo := newFakePermissionRepo()
	repo.addPage(10, "Banners", "/banners")
	svc := NewPermissionService(repo)

	created, err := svc.Upsert(context.Background(), &dto.PermissionRequest{
		RoleID: 2, PageID: 10, CanRead: true,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdatePermissionRequest{
		CanRead: true, CanUpdate: true,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	assert.NoError(t, svc.Check(context.Background(), 2, "Editor", "/banners", models.ActionUpdate))
}

func TestPermissionUpdateNotFound(t *testing.T) {
	svc := NewPermissionService(newFakePermissionRepo())

	_, err := svc.Update(context.Background(), 99, &dto.UpdatePermissionRequest{CanRead: true})
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestPermissionCheckAdministratorBypassesRows(t *testing.T) {
	repo := newFakePermissionRepo()
	svc := NewPermissionService(repo)

	// No pages, no rows: the Administrator still passes everywhere
	for _, action := range []models.Action{
		models.ActionCreate, models.ActionRead, models.ActionUpdate, models.ActionDelete,
	} {
		err := svc.Check(context.Background(), 1, models.AdministratorRole, "/banners", action)
		assert.NoError(t, err, "action %s", action)
	}
}

func TestPermissionCheckFlagGrants(t *testing.T) {
	repo := newFakePermissionRepo()
	repo.addPage(10, "Banners", "/banners")
	svc := NewPermissionService(repo)

	_, err := svc.Upsert(context.Background(), &dto.PermissionRequest{
		RoleID:  2,
		PageID:  10,
		CanRead: true,
	})
	require.NoError(t, err)

	assert.NoError(t, svc.Check(context.Background(), 2, "Editor", "/banners", models.ActionRead))

	err = svc.Check(context.Background(), 2, "Editor", "/banners", models.ActionDelete)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestPermissionCheckMissingRowDenies(t *testing.T) {
	repo := newFakePermissionRepo()
	repo.addPage(10, "Banners", "/banners")
	svc := NewPermissionService(repo)

	err := svc.Check(context.Background(), 2, "Editor", "/banners", models.ActionRead)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestPermissionCheckUnknownPageDenies(t *testing.T) {
	repo := newFakePermissionRepo()
	svc := NewPermissionService(repo)

	err := svc.Check(context.Background(), 2, "Editor", "/nowhere", models.ActionRead)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}

func TestPermissionUpsertReplacesFlags(t *testing.T) {
	repo := newFakePermissionRepo()
	repo.addPage(10, "Banners", "/banners")
	svc := NewPermissionService(repo)

	first, err := svc.Upsert(context.Background(), &dto.PermissionRequest{
		RoleID: 2, PageID: 10, CanRead: true, CanCreate: true,
	})
	require.NoError(t, err)

	second, err := svc.Upsert(context.Background(), &dto.PermissionRequest{
		RoleID: 2, PageID: 10, CanRead: true,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same (role, page) pair keeps one row")

	assert.NoError(t, svc.Check(context.Background(), 2, "Editor", "/banners", models.ActionRead))
	err = svc.Check(context.Background(), 2, "Editor", "/banners", models.ActionCreate)
	assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
}
