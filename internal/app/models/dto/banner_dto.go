package dto

// CreateBannerRequest is the multipart form for a banner upload
type CreateBannerRequest struct {
	Name      string `form:"bannerName" binding:"required"`
	Position  int    `form:"bannerPosition"`
	CreatedBy string `form:"created_by" binding:"required"`
}

// UpdateBannerRequest is the multipart form for a banner update.
// An omitted image preserves the stored image URL.
type UpdateBannerRequest struct {
	Name     string `form:"bannerName" binding:"required"`
	Position int    `form:"bannerPosition"`
	ModifyBy string `form:"modify_by" binding:"required"`
}
