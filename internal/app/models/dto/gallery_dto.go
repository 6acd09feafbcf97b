package dto

// CreateGalleryItemRequest is the multipart form for a gallery upload
type CreateGalleryItemRequest struct {
	Name      string `form:"galleryName" binding:"required"`
	Position  int    `form:"galleryPosition"`
	CreatedBy string `form:"created_by" binding:"required"`
}

// UpdateGalleryItemRequest is the multipart form for a gallery update.
// An omitted image preserves the stored image URL.
type UpdateGalleryItemRequest struct {
	Name     string `form:"galleryName" binding:"required"`
	Position int    `form:"galleryPosition"`
	ModifyBy string `form:"modify_by" binding:"required"`
}

// ToggleVisibilityRequest carries the actor identity for a visibility toggle
type ToggleVisibilityRequest struct {
	ModifyBy string `json:"modify_by" binding:"required"`
}
