package httpx

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/reservation-worker/internal/ports"
	"github.com/Gunvolt24/reservation-worker/pkg/ctxmeta"
)

// RequestLogger — middleware для логирования HTTP-запросов.
// Пути из skip (например, /metrics, /ping) не логируются.
func RequestLogger(log ports.Logger, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if _, ok := skipped[path]; ok {
			return
		}

		sp, _ := ctxmeta.SpanIDFromContext(c.Request.Context())

		// request_id и trace_id добавляет сам логгер из контекста
		log.Infof(
			c.Request.Context(),
			"request span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			sp,
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
