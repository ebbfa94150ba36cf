package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func errorBody(code, message string) gin.H {
	return gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

// ErrorResponder renders errors that reached gin without a response body:
// malformed JSON bodies and unexpected handler failures. Server errors stay
// opaque to the client, their detail goes to the request log.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		if status >= http.StatusInternalServerError {
			c.JSON(status, errorBody("SERVER_ERROR", "server error"))
			return
		}
		c.JSON(status, errorBody("VALIDATION_ERROR", "malformed request body"))
	}
}

// ParamErrorHandler renders path parameter binding failures of the generated
// router.
func ParamErrorHandler(c *gin.Context, err error, status int) {
	c.AbortWithStatusJSON(status, errorBody("VALIDATION_ERROR", err.Error()))
}
