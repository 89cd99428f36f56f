package middleware

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generates an ID when none is supplied", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestID())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("echoes a caller-supplied ID", func(t *testing.T) {
		r := gin.New()
		r.Use(RequestID())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	})
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("logs reported errors and keeps the handler's response", func(t *testing.T) {
		logger, buf := newTestLogger()
		r := gin.New()
		r.Use(RequestID())
		r.Use(ErrorHandler(logger))
		r.GET("/", func(c *gin.Context) {
			_ = c.Error(fmt.Errorf("collection unavailable"))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "collection unavailable"})
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "collection unavailable")
		assert.Contains(t, buf.String(), "Request error")
		assert.Contains(t, buf.String(), "collection unavailable")
	})

	t.Run("writes a 500 when the handler only reports", func(t *testing.T) {
		logger, buf := newTestLogger()
		r := gin.New()
		r.Use(RequestID())
		r.Use(ErrorHandler(logger))
		r.GET("/", func(c *gin.Context) {
			_ = c.Error(fmt.Errorf("boom"))
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("stays silent without errors", func(t *testing.T) {
		logger, buf := newTestLogger()
		r := gin.New()
		r.Use(ErrorHandler(logger))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, buf.String())
	})
}
