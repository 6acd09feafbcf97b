package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/app/services"
	"github.com/campushq/backoffice/internal/middleware"
)

// GalleryController handles gallery operations
type GalleryController struct {
	galleryService services.GalleryService
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService services.GalleryService) *GalleryController {
	return &GalleryController{galleryService: galleryService}
}

// GetAllGalleryItems lists all gallery items
// @Summary List gallery items
// @Description Retrieves all gallery items in display order
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.GalleryItem} "Gallery items retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gallery [get]
func (c *GalleryController) GetAllGalleryItems(ctx *gin.Context) {
	items, err := c.galleryService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(items))
}

// UploadGalleryItem creates a gallery item
// @Summary Upload a gallery item
// @Description Creates a gallery item from an uploaded image
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param galleryName formData string true "Display name"
// @Param galleryPosition formData int false "Display position"
// @Param created_by formData string true "Actor identity"
// @Param file formData file true "Image file"
// @Success 201 {object} dto.APIResponse{data=models.GalleryItem} "Gallery item created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gallery/upload [post]
func (c *GalleryController) UploadGalleryItem(ctx *gin.Context) {
	var req dto.CreateGalleryItemRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	image, _ := ctx.FormFile("file")

	item, err := c.galleryService.Create(ctx.Request.Context(), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// UpdateGalleryItem updates a gallery item
// @Summary Update a gallery item
// @Description Updates a gallery item; an omitted image keeps the stored one
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery item ID"
// @Param galleryName formData string true "Display name"
// @Param galleryPosition formData int false "Display position"
// @Param modify_by formData string true "Actor identity"
// @Param file formData file false "Replacement image"
// @Success 200 {object} dto.APIResponse{data=models.GalleryItem} "Gallery item updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Gallery item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gallery/update/{id} [put]
func (c *GalleryController) UpdateGalleryItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateGalleryItemRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	image, _ := ctx.FormFile("file")

	item, err := c.galleryService.Update(ctx.Request.Context(), id, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// DeleteGalleryItem removes a gallery item
// @Summary Delete a gallery item
// @Description Deletes a gallery item and its stored image
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery item ID"
// @Success 200 {object} dto.APIResponse "Gallery item deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid gallery item ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Gallery item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gallery/delete/{id} [delete]
func (c *GalleryController) DeleteGalleryItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.galleryService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Gallery item deleted successfully"))
}

// ToggleGalleryItemVisibility flips the published flag
// @Summary Toggle gallery item visibility
// @Description Flips the visibility flag of a gallery item
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Gallery item ID"
// @Param request body dto.ToggleVisibilityRequest true "Actor identity"
// @Success 200 {object} dto.APIResponse "Visibility toggled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Gallery item not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gallery/toggle-visibility/{id} [put]
func (c *GalleryController) ToggleGalleryItemVisibility(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ToggleVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.galleryService.ToggleVisibility(ctx.Request.Context(), id, req.ModifyBy); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Visibility toggled successfully"))
}
