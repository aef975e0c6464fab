package handlers

import (
	goerrors "errors"

	"easyrent-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError renders the user-facing view of an error. Anything that is
// not already an AppError goes through the mapper first.
func respondError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if !goerrors.As(err, &appErr) {
		appErr = errors.MapError(err)
	}
	c.JSON(appErr.HTTPStatus, gin.H{
		"error": appErr.UserMessage,
		"code":  appErr.Code,
	})
}
