package dto

// CreateImportantLinkRequest is the multipart form for adding a link.
// The logo file is handled separately by the controller; when absent the
// logo URL field is used as-is.
type CreateImportantLinkRequest struct {
	LogoName  string `form:"logoName" binding:"required"`
	LogoURL   string `form:"logoUrl"`
	LinkURL   string `form:"linkUrl" binding:"required"`
	Position  int    `form:"linkPosition"`
	CreatedBy string `form:"created_by" binding:"required"`
}

// UpdateImportantLinkRequest is the multipart form for editing a link
type UpdateImportantLinkRequest struct {
	LogoName string `form:"logoName" binding:"required"`
	LogoURL  string `form:"logoUrl"`
	LinkURL  string `form:"linkUrl" binding:"required"`
	Position int    `form:"linkPosition"`
	ModifyBy string `form:"modify_by" binding:"required"`
}
