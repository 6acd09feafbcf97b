package dto

// CreateNotificationRequest is the multipart form for adding a notification.
// The attachment file, when present, is handled separately by the controller.
type CreateNotificationRequest struct {
	Message   string `form:"message" binding:"required"`
	URL       string `form:"url"`
	UserID    int64  `form:"user_id"`
	CreatedBy string `form:"created_by" binding:"required"`
}

// UpdateNotificationRequest is the multipart form for editing a notification.
// An omitted file preserves the stored attachment.
type UpdateNotificationRequest struct {
	Message  string `form:"message" binding:"required"`
	URL      string `form:"url"`
	ModifyBy string `form:"modify_by" binding:"required"`
}
