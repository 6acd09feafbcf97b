package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/app/repositories"
	"github.com/campushq/backoffice/internal/pkg/apperrors"
)

type fakeLinkRepo struct {
	items  map[int64]*models.ImportantLink
	nextID int64
	calls  int
}

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{items: map[int64]*models.ImportantLink{}}
}

func (r *fakeLinkRepo) GetAll(ctx context.Context) ([]*models.ImportantLink, error) {
	out := []*models.ImportantLink{}
	for _, l := range r.items {
		out = append(out, l)
	}
	return out, nil
}

func (r *fakeLinkRepo) GetByID(ctx context.Context, id int64) (*models.ImportantLink, error) {
	l, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLinkRepo) Create(ctx context.Context, l *models.ImportantLink) (int64, error) {
	r.calls++
	r.nextID++
	cp := *l
	cp.ID = r.nextID
	r.items[r.nextID] = &cp
	return r.nextID, nil
}

func (r *fakeLinkRepo) Update(ctx context.Context, l *models.ImportantLink) error {
	r.calls++
	if _, ok := r.items[l.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *l
	r.items[l.ID] = &cp
	return nil
}

func (r *fakeLinkRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeLinkRepo) ToggleVisibility(ctx context.Context, id int64, modifyBy string) error {
	l, ok := r.items[id]
	if !ok {
		return repositories.ErrNotFound
	}
	l.IsVisible = !l.IsVisible
	l.Touch(modifyBy)
	return nil
}

func TestLinkCreateAcceptsProtocolFreeURL(t *testing.T) {
	repo := newFakeLinkRepo()
	svc := NewLinkService(repo, &fakeStorage{})

	l, err := svc.Create(context.Background(), &dto.CreateImportantLinkRequest{
		LogoName:  "Library",
		LogoURL:   "https://example.edu/logo.png",
		LinkURL:   "library.example.edu/catalog",
		CreatedBy: "alice",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "library.example.edu/catalog", l.LinkURL)
	assert.True(t, l.IsVisible)
}

func TestLinkCreateRejectsInvalidURL(t *testing.T) {
	repo := newFakeLinkRepo()
	svc := NewLinkService(repo, &fakeStorage{})

	_, err := svc.Create(context.Background(), &dto.CreateImportantLinkRequest{
		LogoName:  "Library",
		LinkURL:   "not a url at all",
		CreatedBy: "alice",
	}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Zero(t, repo.calls)
}

func TestLinkCreateRejectsLongName(t *testing.T) {
	repo := newFakeLinkRepo()
	svc := NewLinkService(repo, &fakeStorage{})

	_, err := svc.Create(context.Background(), &dto.CreateImportantLinkRequest{
		LogoName:  strings.Repeat("x", 181),
		LinkURL:   "https://example.edu",
		CreatedBy: "alice",
	}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Zero(t, repo.calls)
}

func TestLinkCreateUploadedLogoWinsOverLogoURL(t *testing.T) {
	repo := newFakeLinkRepo()
	storage := &fakeStorage{}
	svc := NewLinkService(repo, storage)

	l, err := svc.Create(context.Background(), &dto.CreateImportantLinkRequest{
		LogoName:  "Library",
		LogoURL:   "https://example.edu/external.png",
		LinkURL:   "https://example.edu",
		CreatedBy: "alice",
	}, fileHeader("logo.png"))
	require.NoError(t, err)

	assert.NotEqual(t, "https://example.edu/external.png", l.LogoURL)
	assert.Len(t, storage.saved, 1)
}

func TestLinkUpdatePreservesLogoWithoutUpload(t *testing.T) {
	repo := newFakeLinkRepo()
	svc := NewLinkService(repo, &fakeStorage{})

	l, err := svc.Create(context.Background(), &dto.CreateImportantLinkRequest{
		LogoName:  "Library",
		LinkURL:   "https://example.edu",
		CreatedBy: "alice",
	}, fileHeader("logo.png"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), l.ID, &dto.UpdateImportantLinkRequest{
		LogoName: "Library portal",
		LinkURL:  "https://example.edu/portal",
		ModifyBy: "bob",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, l.LogoURL, updated.LogoURL)
	assert.Equal(t, "Library portal", updated.LogoName)
}
