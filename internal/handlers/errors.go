package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"emoped-plan-backend/internal/apperrors"
	"emoped-plan-backend/internal/models"
)

// respondError writes the error body for err. The cause is logged, never sent.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	_ = c.Error(err)

	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		log.Error("unhandled error", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
		return
	}

	if appErr.Code >= http.StatusInternalServerError {
		log.Error(appErr.Message, "path", c.Request.URL.Path, "error", appErr.Err)
	}
	c.JSON(appErr.Code, models.ErrorResponse{Error: appErr.Message})
}
