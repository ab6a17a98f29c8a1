package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/logger"
)

// Recovery is the pipeline's outer error boundary: any panic is reported as
// the generic internal error with no internal detail leaked to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.CtxError(c.Request.Context(), "Unhandled panic in request", fmt.Errorf("%v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": consts.ErrorInternalServer.Message,
				})
			}
		}()
		c.Next()
	}
}
