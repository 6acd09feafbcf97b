package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/pkg/apperrors"
)

func TestNotificationCreateStampsAudit(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, &fakeStorage{})

	n, err := svc.Create(context.Background(), &dto.CreateNotificationRequest{
		Message:   "Exam schedule published",
		URL:       "https://example.edu/exams",
		CreatedBy: "alice",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "alice", n.CreatedBy)
	assert.False(t, n.CreatedOn.IsZero())
	assert.Nil(t, n.ModifyBy)
	assert.Nil(t, n.ModifyOn)
	assert.NotZero(t, n.ID)
}

func TestNotificationCreateFileWinsOverURL(t *testing.T) {
	repo := newFakeNotificationRepo()
	storage := &fakeStorage{}
	svc := NewNotificationService(repo, storage)

	n, err := svc.Create(context.Background(), &dto.CreateNotificationRequest{
		Message:   "Circular attached",
		URL:       "https://example.edu/ignored",
		CreatedBy: "alice",
	}, fileHeader("circular.pdf"))
	require.NoError(t, err)

	assert.NotEmpty(t, n.FileURL)
	assert.Empty(t, n.URL)
	assert.Len(t, storage.saved, 1)
}

func TestNotificationCreateRejectsLongMessage(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, &fakeStorage{})

	_, err := svc.Create(context.Background(), &dto.CreateNotificationRequest{
		Message:   strings.Repeat("a", 181),
		CreatedBy: "alice",
	}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Zero(t, repo.calls, "repository must not be called for invalid input")
}

func TestNotificationCreateRejectsBadURL(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, &fakeStorage{})

	_, err := svc.Create(context.Background(), &dto.CreateNotificationRequest{
		Message:   "hello",
		URL:       "ftp://example.edu/file",
		CreatedBy: "alice",
	}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	assert.Zero(t, repo.calls)
}

func TestNotificationUpdateWithoutFilePreservesAttachment(t *testing.T) {
	repo := newFakeNotificationRepo()
	storage := &fakeStorage{}
	svc := NewNotificationService(repo, storage)

	created, err := svc.Create(context.Background(), &dto.CreateNotificationRequest{
		Message:   "original",
		CreatedBy: "alice",
	}, fileHeader("doc.pdf"))
	require.NoError(t, err)
	require.NotEmpty(t, created.FileURL)

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateNotificationRequest{
		Message:  "edited",
		ModifyBy: "bob",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, created.FileURL, updated.FileURL)
	assert.Equal(t, "edited", updated.Message)
	require.NotNil(t, updated.ModifyBy)
	assert.Equal(t, "bob", *updated.ModifyBy)
	assert.NotNil(t, updated.ModifyOn)
	assert.Equal(t, "alice", updated.CreatedBy, "created_by is immutable")
	assert.Empty(t, storage.deleted)
}

func TestNotificationUpdateWithFileReplacesAttachment(t *testing.T) {
	repo := newFakeNotificationRepo()
	storage := &fakeStorage{}
	svc := NewNotificationService(repo, storage)

	created, err := svc.Create(context.Background(), &dto.CreateNotificationRequest{
		Message:   "original",
		CreatedBy: "alice",
	}, fileHeader("old.pdf"))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateNotificationRequest{
		Message:  "edited",
		ModifyBy: "bob",
	}, fileHeader("new.pdf"))
	require.NoError(t, err)

	assert.NotEqual(t, created.FileURL, updated.FileURL)
	assert.Contains(t, storage.deleted, created.FileURL)
}

func TestNotificationUpdateNotFound(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo, &fakeStorage{})

	_, err := svc.Update(context.Background(), 42, &dto.UpdateNotificationRequest{
		Message:  "edited",
		ModifyBy: "bob",
	}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestNotificationDeleteRemovesAttachment(t *testing.T) {
	repo := newFakeNotificationRepo()
	storage := &fakeStorage{}
	svc := NewNotificationService(repo, storage)

	created, err := svc.Create(context.Background(), &dto.CreateNotificationRequest{
		Message:   "with attachment",
		CreatedBy: "alice",
	}, fileHeader("doc.pdf"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Contains(t, storage.deleted, created.FileURL)

	_, err = svc.Update(context.Background(), created.ID, &dto.UpdateNotificationRequest{
		Message:  "gone",
		ModifyBy: "bob",
	}, nil)
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}
