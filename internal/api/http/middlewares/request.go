package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок с идентификатором запроса.
const RequestIDHeader = "X-Request-ID"

// requestIDKey — ключ идентификатора в gin.Context.
const requestIDKey = "request_id"

// RequestID берёт X-Request-ID из запроса или выдаёт новый UUIDv7 и возвращает его в ответе.
func RequestID(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if id == "" {
		if v7, err := uuid.NewV7(); err == nil {
			id = v7.String()
		} else {
			id = uuid.NewString()
		}
	}
	c.Set(requestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// GetRequestID возвращает идентификатор текущего запроса (пусто, если мидлварь не подключена).
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger логирует каждый запрос: метод, путь, статус, длительность, client IP, request id.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		clientIP := c.ClientIP()
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		if raw != "" {
			path = path + "?" + raw
		}
		log.Info("request",
			"method", method,
			"path", path,
			"status", status,
			"ip", clientIP,
			"latency_ms", latency.Milliseconds(),
			"request_id", GetRequestID(c),
		)
	}
}
