package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/consts"
	"github.com/sami-bigdrops/Mortgage-AssureRates/internal/pkg/logger"
)

// AttachRequestDetails assigns each request a trace id, stores it on the
// request context for the logger, and logs a request/response summary with
// sensitive headers masked.
func AttachRequestDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		logger.CtxInfo(ctx, "Request received",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.Any("headers", maskedHeaders(c.Request.Header)),
		)

		c.Next()

		logger.CtxInfo(ctx, "Request completed",
			zap.Int("status", c.Writer.Status()),
			zap.String("path", c.Request.URL.Path),
		)
	}
}

func maskedHeaders(headers map[string][]string) map[string]string {
	result := make(map[string]string, len(headers))
	for key, values := range headers {
		if len(values) == 0 {
			continue
		}
		if containsFold(consts.SensitiveKeys, key) {
			result[key] = "*****"
		} else {
			result[key] = values[0]
		}
	}
	return result
}

func containsFold(slice []string, item string) bool {
	for _, a := range slice {
		if strings.EqualFold(a, item) {
			return true
		}
	}
	return false
}
