package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"track-recommender/internal/api/errors"
)

// ErrorHandler recovers from panics and reports them as internal API errors
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("Internal server error",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = errors.NewInternalError("Internal server error")
		default:
			logger.Error("Unknown panic occurred",
				zap.Any("recovered", recovered),
				zap.String("request_id", requestID),
			)
			apiErr = errors.NewInternalError("Internal server error")
		}

		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes err as an API error response. Application errors are
// mapped with errors.FromDomain and attached to the gin context for logging.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := errors.FromDomain(err)
	if apiErr != err {
		_ = c.Error(err)
	}

	resp := *apiErr
	resp.RequestID = c.GetString(RequestIDKey)
	c.AbortWithStatusJSON(resp.HTTPStatus(), &resp)
}
