package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(limit time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(limit).Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r *gin.Engine, clientID string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if clientID != "" {
		req.Header.Set("X-Client-ID", clientID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterRequiresClientID(t *testing.T) {
	r := newRouter(time.Second)
	assert.Equal(t, http.StatusBadRequest, get(r, ""))
}

func TestRateLimiterThrottlesPerClient(t *testing.T) {
	r := newRouter(time.Hour)
	assert.Equal(t, http.StatusOK, get(r, "alice"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "alice"))
	assert.Equal(t, http.StatusOK, get(r, "bob"))
}

func TestRateLimiterAllowsAfterWindow(t *testing.T) {
	r := newRouter(10 * time.Millisecond)
	assert.Equal(t, http.StatusOK, get(r, "alice"))
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, http.StatusOK, get(r, "alice"))
}
