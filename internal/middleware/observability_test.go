package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajharbinger/leaderboard-api/internal/logger"
	"github.com/ajharbinger/leaderboard-api/internal/metrics"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("assigns a new id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps a valid inbound id", func(t *testing.T) {
		inbound := uuid.NewString()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, inbound)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, inbound, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces a malformed inbound id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid\r\n")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid\r\n", w.Header().Get(RequestIDHeader))
		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var out bytes.Buffer
	log := logger.NewWithWriters(logger.LevelInfo, &out, &out)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(log))
	router.GET("/scores", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})
	router.POST("/scores", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/scores?x=1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, out.String(), "Request handled status=200 method=GET path=/scores?x=1")
	assert.Contains(t, out.String(), "request_id="+w.Header().Get(RequestIDHeader))

	out.Reset()
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/scores", nil))
	assert.Contains(t, out.String(), "Request rejected status=400")
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	m := metrics.New()
	router := gin.New()
	router.Use(MetricsMiddleware(m))
	router.GET("/scores", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/scores", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/nope", nil))

	count, err := testutil.GatherAndCount(m.Registry(), "leaderboard_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series for /scores and one for unmatched routes")
}
