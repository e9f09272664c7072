package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinMiddlewareUsesRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	router := gin.New()
	router.Use(m.GinMiddleware())
	router.GET("/edit/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/edit/1", "/edit/2", "/nope"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/edit/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestProjectCounters(t *testing.T) {
	m := New()
	m.ObserveProjectOperation("create", "ok")
	m.ObserveProjectOperation("create", "invalid")
	m.ObserveProjectOperation("create", "ok")
	m.AddUploadedBytes(10)
	m.AddUploadedBytes(-1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProjectOperationsTotal.WithLabelValues("create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProjectOperationsTotal.WithLabelValues("create", "invalid")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.UploadedBytesTotal))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveProjectOperation("delete", "ok")
		m.AddUploadedBytes(5)
	})
}

func TestSeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.AddUploadedBytes(3)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.UploadedBytesTotal))

	rr := httptest.NewRecorder()
	a.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "portfolio_uploaded_bytes_total 3")
}
