package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	traceHeader     = "X-Trace-ID"
	traceContextKey = "traceID"
)

// TraceMiddleware 为每个请求附加追踪 ID
// 上游网关已带 X-Trace-ID 时沿用，否则生成新的
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(traceHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		c.Set(traceContextKey, traceID)
		c.Header(traceHeader, traceID)

		c.Next()
	}
}

// TraceID 读取当前请求的追踪 ID，未挂载追踪中间件时返回空串
func TraceID(c *gin.Context) string {
	return c.GetString(traceContextKey)
}
