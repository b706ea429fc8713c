package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vg-ms-user/internal/domain"
)

// writeError answers with the status matching the error kind. Anything
// unrecognised is logged and hidden behind fallback.
func writeError(c *gin.Context, logger *zap.Logger, op, fallback string, err error) {
	var (
		notFound   *domain.NotFoundError
		invalidRef *domain.InvalidReferenceError
		inactive   *domain.InactiveReferenceError
		notActive  *domain.UserNotActiveError
		validation *domain.ValidationError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &invalidRef), errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &inactive), errors.As(err, &notActive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
		logger.Error(op+"() error", zap.Error(err))
	}
}

func badRequest(c *gin.Context, details any) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request body",
		"details": details,
	})
}
