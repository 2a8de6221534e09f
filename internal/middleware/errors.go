package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/trackhire-api/internal/errors"
	"github.com/yukikurage/trackhire-api/internal/response"
)

// ErrorHandler renders the last error attached to the context as a failure
// envelope. Internal causes are logged and never sent to the client.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apierrors.From(c.Errors.Last().Err)
		if appErr.Kind == apierrors.KindInternal {
			logger.Error("request failed",
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("error", appErr.Error()),
			)
		}

		response.Fail(c, appErr.Status(), appErr.PublicMessage())
	}
}

// Recovery turns a panic into a 500 envelope.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			slog.String("path", c.Request.URL.Path),
			slog.Any("panic", recovered),
		)
		response.AbortWithFail(c, http.StatusInternalServerError, "Internal server error")
	})
}

// NotFound answers unknown routes with an envelope.
func NotFound(c *gin.Context) {
	response.Fail(c, http.StatusNotFound, "Route "+c.Request.URL.Path+" not found")
}
