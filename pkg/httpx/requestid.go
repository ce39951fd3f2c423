package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gunvolt24/reservation-worker/pkg/ctxmeta"
)

// HeaderRequestID — заголовок корреляции запросов.
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen — длиннее не принимаем от клиента: id попадает в каждую строку лога.
const maxRequestIDLen = 128

// RequestIDMiddleware:
// - принимает X-Request-ID от клиента (если он разумной длины) или генерирует UUID
// - кладёт request_id в контекст
// - возвращает его в ответном заголовке X-Request-ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		ctx := ctxmeta.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
