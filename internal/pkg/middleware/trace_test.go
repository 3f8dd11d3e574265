package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(captured *string) *gin.Engine {
		router := gin.New()
		router.Use(TraceMiddleware())
		router.GET("/ping", func(c *gin.Context) {
			*captured = TraceID(c)
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("upstream trace id preserved", func(t *testing.T) {
		var seen string
		router := newRouter(&seen)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Trace-ID", "gateway-trace-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "gateway-trace-123", seen)
		assert.Equal(t, "gateway-trace-123", w.Header().Get("X-Trace-ID"))
	})

	t.Run("trace id generated when missing", func(t *testing.T) {
		var seen string
		router := newRouter(&seen)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get("X-Trace-ID"))
	})

	t.Run("empty without middleware", func(t *testing.T) {
		router := gin.New()
		var seen string
		router.GET("/ping", func(c *gin.Context) {
			seen = TraceID(c)
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Empty(t, seen)
	})
}
