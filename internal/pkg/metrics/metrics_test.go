//go:build unit
// +build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mykyta-Harashchenko/PhotoShare-Project/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := New(testutil.SetupTestLogger(t))
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/posts/:post_id", func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))
	return r, m
}

func TestMiddleware_CountsByRouteTemplate(t *testing.T) {
	r, m := newRouter(t)

	for _, path := range []string{"/api/posts/1", "/api/posts/2", "/nowhere"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, promtestutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/posts/:post_id", "204")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", unmatchedRoute, "404")))
	assert.Equal(t, 2, promtestutil.CollectAndCount(m.requestDuration))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	r, _ := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/posts/7", nil))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `photoshare_http_requests_total{method="GET",route="/api/posts/:post_id",status="204"} 1`))
	assert.Contains(t, body, "go_goroutines")
}
