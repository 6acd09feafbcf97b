package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/app/services"
	"github.com/campushq/backoffice/internal/middleware"
)

// PermissionController handles permission administration
type PermissionController struct {
	permissionService services.PermissionService
}

// NewPermissionController creates a new PermissionController
func NewPermissionController(permissionService services.PermissionService) *PermissionController {
	return &PermissionController{permissionService: permissionService}
}

// GetAllPermissions lists all permission rows
// @Summary List permissions
// @Description Retrieves every (role, page) permission row
// @Tags permissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Permission} "Permissions retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /permissions [get]
func (c *PermissionController) GetAllPermissions(ctx *gin.Context) {
	permissions, err := c.permissionService.GetAllPermissions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(permissions))
}

// UpsertPermission creates or replaces a permission row
// @Summary Save a permission
// @Description Creates or replaces the permission row for a (role, page) pair
// @Tags permissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PermissionRequest true "Permission flags"
// @Success 200 {object} dto.APIResponse{data=models.Permission} "Permission saved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /permissions [post]
func (c *PermissionController) UpsertPermission(ctx *gin.Context) {
	var req dto.PermissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	permission, err := c.permissionService.Upsert(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(permission))
}

// UpdatePermission rewrites an existing permission row
// @Summary Update a permission
// @Description Rewrites the flags of an existing permission row by ID
// @Tags permissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Permission ID"
// @Param request body dto.UpdatePermissionRequest true "Permission flags"
// @Success 200 {object} dto.APIResponse{data=models.Permission} "Permission updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Permission not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /permissions/{id} [put]
func (c *PermissionController) UpdatePermission(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePermissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	permission, err := c.permissionService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(permission))
}

// GetAllRoles lists all roles
// @Summary List roles
// @Description Retrieves all roles
// @Tags permissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Role} "Roles retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles [get]
func (c *PermissionController) GetAllRoles(ctx *gin.Context) {
	roles, err := c.permissionService.GetAllRoles(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(roles))
}

// GetAllPages lists all pages
// @Summary List pages
// @Description Retrieves all permissioned pages
// @Tags permissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Page} "Pages retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pages [get]
func (c *PermissionController) GetAllPages(ctx *gin.Context) {
	pages, err := c.permissionService.GetAllPages(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(pages))
}
