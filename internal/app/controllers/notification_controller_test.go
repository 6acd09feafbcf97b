package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubNotificationService struct {
	notifications []*models.Notification
	created       *dto.CreateNotificationRequest
	createdFile   *multipart.FileHeader
	deletedID     int64
	err           error
}

func (s *stubNotificationService) GetAll(ctx context.Context) ([]*models.Notification, error) {
	return s.notifications, s.err
}

func (s *stubNotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest, file *multipart.FileHeader) (*models.Notification, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = req
	s.createdFile = file
	return &models.Notification{ID: 1, Message: req.Message, URL: req.URL}, nil
}

func (s *stubNotificationService) Update(ctx context.Context, id int64, req *dto.UpdateNotificationRequest, file *multipart.FileHeader) (*models.Notification, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Notification{ID: id, Message: req.Message, URL: req.URL}, nil
}

func (s *stubNotificationService) Delete(ctx context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.deletedID = id
	return nil
}

func notificationRouter(service *stubNotificationService) *gin.Engine {
	router := gin.New()
	c := NewNotificationController(service)
	router.GET("/notifications/all-notification", c.GetAllNotifications)
	router.POST("/notifications/add-notification", c.AddNotification)
	router.PUT("/notifications/edit/:id", c.EditNotification)
	router.DELETE("/notifications/delete/:id", c.DeleteNotification)
	return router
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("file-content"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestGetAllNotifications(t *testing.T) {
	service := &stubNotificationService{notifications: []*models.Notification{
		{ID: 1, Message: "Exam schedule published"},
	}}
	router := notificationRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/all-notification", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Exam schedule published")
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestAddNotificationWithFile(t *testing.T) {
	service := &stubNotificationService{}
	router := notificationRouter(service)

	body, contentType := multipartBody(t, map[string]string{
		"message":    "Library closed on Friday",
		"created_by": "alice",
	}, "file", "notice.pdf")

	req := httptest.NewRequest(http.MethodPost, "/notifications/add-notification", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, service.created)
	assert.Equal(t, "Library closed on Friday", service.created.Message)
	assert.Equal(t, "alice", service.created.CreatedBy)
	require.NotNil(t, service.createdFile)
	assert.Equal(t, "notice.pdf", service.createdFile.Filename)
}

func TestAddNotificationMissingMessage(t *testing.T) {
	service := &stubNotificationService{}
	router := notificationRouter(service)

	body, contentType := multipartBody(t, map[string]string{"created_by": "alice"}, "", "")

	req := httptest.NewRequest(http.MethodPost, "/notifications/add-notification", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_002")
	assert.Nil(t, service.created, "binding failure must not reach the service")
}

func TestEditNotificationInvalidID(t *testing.T) {
	router := notificationRouter(&stubNotificationService{})

	body, contentType := multipartBody(t, map[string]string{
		"message":   "updated",
		"modify_by": "bob",
	}, "", "")

	req := httptest.NewRequest(http.MethodPut, "/notifications/edit/abc", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestDeleteNotificationNotFound(t *testing.T) {
	service := &stubNotificationService{err: apperrors.NewResourceNotFoundError("notification not found")}
	router := notificationRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notifications/delete/5", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "RES_001")
}

func TestDeleteNotification(t *testing.T) {
	service := &stubNotificationService{}
	router := notificationRouter(service)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notifications/delete/5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(5), service.deletedID)
}
