package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/app/services"
	"github.com/campushq/backoffice/internal/middleware"
)

// LinkController handles important-link operations
type LinkController struct {
	linkService services.LinkService
}

// NewLinkController creates a new LinkController
func NewLinkController(linkService services.LinkService) *LinkController {
	return &LinkController{linkService: linkService}
}

// GetAllLinks lists all important links
// @Summary List important links
// @Description Retrieves all important links in display order
// @Tags important-links
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ImportantLink} "Links retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /important-links/all [get]
func (c *LinkController) GetAllLinks(ctx *gin.Context) {
	links, err := c.linkService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(links))
}

// UploadLink creates an important link
// @Summary Add an important link
// @Description Creates a link with an uploaded logo file or a logo URL
// @Tags important-links
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param logoName formData string true "Logo display name"
// @Param logoUrl formData string false "Logo URL when no file is uploaded"
// @Param linkUrl formData string true "Destination URL"
// @Param linkPosition formData int false "Display position"
// @Param created_by formData string true "Actor identity"
// @Param logoFile formData file false "Logo image file"
// @Success 201 {object} dto.APIResponse{data=models.ImportantLink} "Link created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /important-links/upload [post]
func (c *LinkController) UploadLink(ctx *gin.Context) {
	var req dto.CreateImportantLinkRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	logo, _ := ctx.FormFile("logoFile")

	link, err := c.linkService.Create(ctx.Request.Context(), &req, logo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(link))
}

// UpdateLink updates an important link
// @Summary Update an important link
// @Description Updates a link; an omitted logo file keeps the stored logo
// @Tags important-links
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Param logoName formData string true "Logo display name"
// @Param logoUrl formData string false "Logo URL when no file is uploaded"
// @Param linkUrl formData string true "Destination URL"
// @Param linkPosition formData int false "Display position"
// @Param modify_by formData string true "Actor identity"
// @Param logoFile formData file false "Replacement logo image"
// @Success 200 {object} dto.APIResponse{data=models.ImportantLink} "Link updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Link not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /important-links/update/{id} [put]
func (c *LinkController) UpdateLink(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateImportantLinkRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	logo, _ := ctx.FormFile("logoFile")

	link, err := c.linkService.Update(ctx.Request.Context(), id, &req, logo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(link))
}

// DeleteLink removes an important link
// @Summary Delete an important link
// @Description Deletes a link and its stored logo
// @Tags important-links
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Success 200 {object} dto.APIResponse "Link deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid link ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Link not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /important-links/delete/{id} [delete]
func (c *LinkController) DeleteLink(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.linkService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Link deleted successfully"))
}

// ToggleLinkVisibility flips the published flag
// @Summary Toggle link visibility
// @Description Flips the visibility flag of an important link
// @Tags important-links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Param request body dto.ToggleVisibilityRequest true "Actor identity"
// @Success 200 {object} dto.APIResponse "Visibility toggled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Link not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /important-links/toggle-visibility/{id} [put]
func (c *LinkController) ToggleLinkVisibility(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ToggleVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.linkService.ToggleVisibility(ctx.Request.Context(), id, req.ModifyBy); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Visibility toggled successfully"))
}
