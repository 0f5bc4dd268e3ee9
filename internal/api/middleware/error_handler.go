package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	apierrors "whisper-transcription/internal/api/errors"
)

// ErrorHandler recovers from panics and turns them into the standard
// {"error": "<message>"} body with a 500 status.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString("request_id")

		logger.Error("Panic recovered",
			"request_id", requestID,
			"panic", recovered,
			"path", c.Request.URL.Path,
		)

		apiErr := apierrors.NewInternalError("Internal server error")
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes the error to the response in the standard shape and
// aborts the request. Any non-APIError is surfaced verbatim as a
// transcription failure.
func HandleError(c *gin.Context, err error) {
	apiErr := apierrors.FromError(err)
	if apiErr == nil {
		return
	}

	c.Error(apiErr)
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
