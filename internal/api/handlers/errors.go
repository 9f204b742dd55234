package handlers

import (
	"context"
	"errors"
	"net/http"

	apperrors "staffing-dashboard/internal/errors"
	"staffing-dashboard/internal/logger"

	"github.com/gin-gonic/gin"
)

// StatusClientClosedRequest is recorded when the caller went away before the
// response was ready
const StatusClientClosedRequest = 499

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	log := logger.WithContext(c).WithError(err)

	switch {
	case errors.Is(err, context.Canceled):
		log.Debug("Request cancelled by client")
		c.AbortWithStatus(StatusClientClosedRequest)
	case errors.Is(err, context.DeadlineExceeded):
		log.Error("Data source timed out")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Data source unavailable"})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsConnection(err):
		log.Error("Data source unavailable")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Data source unavailable"})
	case apperrors.IsQuery(err):
		log.Error("Staffing query failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to query staffing data"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
