package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/app/repositories"
)

// fakeStorage records saves and deletes without touching the filesystem
type fakeStorage struct {
	saved   []string
	deleted []string
	nextID  int
}

func (f *fakeStorage) Save(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	f.nextID++
	url := fmt.Sprintf("http://localhost:8080/uploads/%s/file-%d", subPath, f.nextID)
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) Delete(fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

// fileHeader builds a minimal multipart header for upload paths
func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

// fakeNotificationRepo is an in-memory NotificationRepository
type fakeNotificationRepo struct {
	items  map[int64]*models.Notification
	nextID int64
	calls  int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{items: map[int64]*models.Notification{}}
}

func (r *fakeNotificationRepo) GetAll(ctx context.Context) ([]*models.Notification, error) {
	out := []*models.Notification{}
	for _, n := range r.items {
		out = append(out, n)
	}
	return out, nil
}

func (r *fakeNotificationRepo) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	n, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) (int64, error) {
	r.calls++
	r.nextID++
	cp := *n
	cp.ID = r.nextID
	r.items[r.nextID] = &cp
	return r.nextID, nil
}

func (r *fakeNotificationRepo) Update(ctx context.Context, n *models.Notification) error {
	r.calls++
	if _, ok := r.items[n.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *n
	r.items[n.ID] = &cp
	return nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// fakeFacultyRepo is an in-memory FacultyRepository
type fakeFacultyRepo struct {
	items  map[int64]*models.Faculty
	nextID int64
	calls  int
}

func newFakeFacultyRepo() *fakeFacultyRepo {
	return &fakeFacultyRepo{items: map[int64]*models.Faculty{}}
}

func (r *fakeFacultyRepo) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	out := []*models.Faculty{}
	for _, f := range r.items {
		out = append(out, f)
	}
	return out, nil
}

func (r *fakeFacultyRepo) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	f, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *f
	cp.Documents = append(models.Documents{}, f.Documents...)
	return &cp, nil
}

func (r *fakeFacultyRepo) Create(ctx context.Context, f *models.Faculty) (int64, error) {
	r.calls++
	r.nextID++
	cp := *f
	cp.ID = r.nextID
	r.items[r.nextID] = &cp
	return r.nextID, nil
}

func (r *fakeFacultyRepo) Update(ctx context.Context, f *models.Faculty) error {
	r.calls++
	if _, ok := r.items[f.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *f
	r.items[f.ID] = &cp
	return nil
}

func (r *fakeFacultyRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeFacultyRepo) ToggleVisibility(ctx context.Context, id int64, modifyBy string) error {
	f, ok := r.items[id]
	if !ok {
		return repositories.ErrNotFound
	}
	f.IsVisible = !f.IsVisible
	f.Touch(modifyBy)
	return nil
}

// fakeGalleryRepo is an in-memory GalleryRepository
type fakeGalleryRepo struct {
	items  map[int64]*models.GalleryItem
	nextID int64
	calls  int
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{items: map[int64]*models.GalleryItem{}}
}

func (r *fakeGalleryRepo) GetAll(ctx context.Context) ([]*models.GalleryItem, error) {
	out := []*models.GalleryItem{}
	for _, g := range r.items {
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeGalleryRepo) GetByID(ctx context.Context, id int64) (*models.GalleryItem, error) {
	g, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *fakeGalleryRepo) Create(ctx context.Context, g *models.GalleryItem) (int64, error) {
	r.calls++
	r.nextID++
	cp := *g
	cp.ID = r.nextID
	r.items[r.nextID] = &cp
	return r.nextID, nil
}

func (r *fakeGalleryRepo) Update(ctx context.Context, g *models.GalleryItem) error {
	r.calls++
	if _, ok := r.items[g.ID]; !ok {
		return repositories.ErrNotFound
	}
	cp := *g
	r.items[g.ID] = &cp
	return nil
}

func (r *fakeGalleryRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeGalleryRepo) ToggleVisibility(ctx context.Context, id int64, modifyBy string) error {
	g, ok := r.items[id]
	if !ok {
		return repositories.ErrNotFound
	}
	g.IsVisible = !g.IsVisible
	g.Touch(modifyBy)
	return nil
}
