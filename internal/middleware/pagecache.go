package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/yatube/internal/cache"
	"github.com/d60-Lab/yatube/pkg/logger"
)

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	return w.ResponseWriter.Write(p)
}

// CachePage serves the rendered body of the attached route from the page
// cache for ttl. Entries are keyed by path plus the page parameter; data
// writes do not invalidate them, so a stale body is allowed until the TTL
// runs out or the cache is cleared.
func CachePage(pc cache.PageCache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Request.URL.Path + "?page=" + c.Query("page")

		if body, err := pc.Get(c.Request.Context(), key); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		w := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}
		if err := pc.Set(c.Request.Context(), key, w.buf.Bytes(), ttl); err != nil {
			logger.Warn("page cache set failed", zap.Error(err), zap.String("key", key))
		}
	}
}
