package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/app/services"
	"github.com/campushq/backoffice/internal/middleware"
)

// BannerController handles banner operations
type BannerController struct {
	bannerService services.BannerService
}

// NewBannerController creates a new BannerController
func NewBannerController(bannerService services.BannerService) *BannerController {
	return &BannerController{bannerService: bannerService}
}

// GetAllBanners lists all banners
// @Summary List banners
// @Description Retrieves all banners in display order
// @Tags banners
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Banner} "Banners retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /banners [get]
func (c *BannerController) GetAllBanners(ctx *gin.Context) {
	banners, err := c.bannerService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(banners))
}

// UploadBanner creates a banner
// @Summary Upload a banner
// @Description Creates a banner from an uploaded image
// @Tags banners
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param bannerName formData string true "Display name"
// @Param bannerPosition formData int false "Display position"
// @Param created_by formData string true "Actor identity"
// @Param file formData file true "Image file"
// @Success 201 {object} dto.APIResponse{data=models.Banner} "Banner created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /banners/upload [post]
func (c *BannerController) UploadBanner(ctx *gin.Context) {
	var req dto.CreateBannerRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	image, _ := ctx.FormFile("file")

	banner, err := c.bannerService.Create(ctx.Request.Context(), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(banner))
}

// UpdateBanner updates a banner
// @Summary Update a banner
// @Description Updates a banner; an omitted image keeps the stored one
// @Tags banners
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Banner ID"
// @Param bannerName formData string true "Display name"
// @Param bannerPosition formData int false "Display position"
// @Param modify_by formData string true "Actor identity"
// @Param file formData file false "Replacement image"
// @Success 200 {object} dto.APIResponse{data=models.Banner} "Banner updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Banner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /banners/update/{id} [put]
func (c *BannerController) UpdateBanner(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBannerRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	image, _ := ctx.FormFile("file")

	banner, err := c.bannerService.Update(ctx.Request.Context(), id, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(banner))
}

// DeleteBanner removes a banner
// @Summary Delete a banner
// @Description Deletes a banner and its stored image
// @Tags banners
// @Produce json
// @Security BearerAuth
// @Param id path int true "Banner ID"
// @Success 200 {object} dto.APIResponse "Banner deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid banner ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Banner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /banners/delete/{id} [delete]
func (c *BannerController) DeleteBanner(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.bannerService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Banner deleted successfully"))
}

// ToggleBannerVisibility flips the published flag
// @Summary Toggle banner visibility
// @Description Flips the visibility flag of a banner
// @Tags banners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Banner ID"
// @Param request body dto.ToggleVisibilityRequest true "Actor identity"
// @Success 200 {object} dto.APIResponse "Visibility toggled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Banner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /banners/toggle-visibility/{id} [put]
func (c *BannerController) ToggleBannerVisibility(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ToggleVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.bannerService.ToggleVisibility(ctx.Request.Context(), id, req.ModifyBy); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Visibility toggled successfully"))
}
