package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"organisation-api/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	router := newRouter(RequestID(), Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"Internal server error","message":"Internal server error","statusCode":500}`, w.Body.String())
}

func TestLogger(t *testing.T) {
	router := newRouter(RequestID(), Logger())
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	for _, path := range []string{"/ok", "/bad", "/missing"} {
		w := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		})
	}
}

func TestBodyLimit(t *testing.T) {
	router := newRouter(BodyLimit())
	router.POST("/", func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	small := httptest.NewRecorder()
	router.ServeHTTP(small, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`)))
	assert.Equal(t, http.StatusOK, small.Code)

	huge := `{"a":"` + strings.Repeat("x", maxRequestBodySize+1) + `"}`
	large := httptest.NewRecorder()
	router.ServeHTTP(large, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(huge)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, large.Code)
}

func TestMetrics(t *testing.T) {
	m := metrics.Noop()
	router := newRouter(Metrics(m))
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/items/1", "/items/2", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	var matched, unmatched io_prometheus_client.Metric
	require.NoError(t, m.Requests.WithLabelValues("GET", "/items/:id", "200").Write(&matched))
	require.NoError(t, m.Requests.WithLabelValues("GET", "unmatched", "404").Write(&unmatched))
	assert.Equal(t, float64(2), matched.GetCounter().GetValue())
	assert.Equal(t, float64(1), unmatched.GetCounter().GetValue())
}
