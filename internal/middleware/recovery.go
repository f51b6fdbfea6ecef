package middleware

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/pkg/logger"
)

// Recovery turns panics into the custom 500 body and reports them to Sentry
// when a DSN is configured. Nothing from the panic value reaches the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if hub := sentry.GetHubFromContext(c.Request.Context()); hub != nil {
					hub.Recover(r)
				} else {
					sentry.CurrentHub().Recover(r)
				}
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"code": http.StatusInternalServerError,
					"msg":  "server error",
				})
			}
		}()
		c.Next()
	}
}

// RequestLog 访问日志
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
