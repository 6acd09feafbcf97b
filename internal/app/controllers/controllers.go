// Package controllers holds the gin HTTP handlers. Each controller binds
// and validates the request, delegates to its service and writes the
// standard response envelope; error mapping is centralized in
// middleware.HandleAPIError.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq/backoffice/internal/app/models/dto"
)

// parseIDParam reads the ":id" path parameter. On failure it writes the
// validation error response and returns false.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
