package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/app/services"
	"github.com/campushq/backoffice/internal/middleware"
)

// FacultyController handles faculty profile operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// documentFiles pulls the uploaded document list out of the multipart form
func documentFiles(ctx *gin.Context) []*multipart.FileHeader {
	form, err := ctx.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["documents"]
}

// GetAllFaculty lists all faculty members
// @Summary List faculty members
// @Description Retrieves all faculty profiles
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty} "Faculty members retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty [get]
func (c *FacultyController) GetAllFaculty(ctx *gin.Context) {
	members, err := c.facultyService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(members))
}

// AddFaculty creates a faculty member
// @Summary Add a faculty member
// @Description Creates a faculty profile with an optional photo and document files
// @Tags faculty
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Full name"
// @Param qualification formData string false "Qualification"
// @Param designation formData string false "Designation"
// @Param monthlySalary formData number false "Monthly salary"
// @Param yearlyLeave formData int false "Yearly leave allowance"
// @Param documentTitles formData string false "JSON array of document titles"
// @Param created_by formData string true "Actor identity"
// @Param photo formData file false "Profile photo"
// @Param documents formData file false "Document files"
// @Success 201 {object} dto.APIResponse{data=models.Faculty} "Faculty member created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/add [post]
func (c *FacultyController) AddFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	photo, _ := ctx.FormFile("photo")
	docs := documentFiles(ctx)

	member, err := c.facultyService.Create(ctx.Request.Context(), &req, photo, docs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(member))
}

// UpdateFaculty updates a faculty member
// @Summary Update a faculty member
// @Description Updates a visible faculty profile; omitted files keep the stored ones and uploaded documents are appended
// @Tags faculty
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param name formData string true "Full name"
// @Param qualification formData string false "Qualification"
// @Param designation formData string false "Designation"
// @Param monthlySalary formData number false "Monthly salary"
// @Param yearlyLeave formData int false "Yearly leave allowance"
// @Param documentTitles formData string false "JSON array of document titles"
// @Param modify_by formData string true "Actor identity"
// @Param photo formData file false "Replacement profile photo"
// @Param documents formData file false "Additional document files"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Faculty member updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty member is hidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/update/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	photo, _ := ctx.FormFile("photo")
	docs := documentFiles(ctx)

	member, err := c.facultyService.Update(ctx.Request.Context(), id, &req, photo, docs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(member))
}

// DeleteFaculty removes a faculty member
// @Summary Delete a faculty member
// @Description Deletes a visible faculty profile with its photo and documents
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.APIResponse "Faculty member deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid faculty ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty member is hidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/delete/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.facultyService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Faculty member deleted successfully"))
}

// ToggleFacultyVisibility flips the published flag
// @Summary Toggle faculty visibility
// @Description Flips the visibility flag of a faculty profile
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.ToggleVisibilityRequest true "Actor identity"
// @Success 200 {object} dto.APIResponse "Visibility toggled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/toggle-visibility/{id} [put]
func (c *FacultyController) ToggleFacultyVisibility(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ToggleVisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.facultyService.ToggleVisibility(ctx.Request.Context(), id, req.ModifyBy); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Visibility toggled successfully"))
}

// UpdateDocumentTitle renames one faculty document
// @Summary Rename a faculty document
// @Description Updates the title of one document in a faculty profile by index
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateDocumentTitleRequest true "Document index and new title"
// @Success 200 {object} dto.APIResponse{data=models.Faculty} "Document title updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or index out of range"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Faculty member not found"
// @Failure 409 {object} dto.ErrorResponse "Faculty member is hidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculty/{id}/update-document-title [put]
func (c *FacultyController) UpdateDocumentTitle(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateDocumentTitleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	member, err := c.facultyService.UpdateDocumentTitle(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(member))
}
