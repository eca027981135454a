package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func router(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/x", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSAllowsOnlyListedOrigins(t *testing.T) {
	policy := NewOriginPolicy([]string{"https://app.example.com"})
	r := router(CORS(policy))

	w := get(r, http.MethodGet, "https://app.example.com")
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = get(r, http.MethodGet, "https://evil.example.com")
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	policy.SetOrigins([]string{"https://evil.example.com"})
	w = get(r, http.MethodGet, "https://evil.example.com")
	assert.Equal(t, "https://evil.example.com", w.Header().Get("Access-Control-Allow-Origin"), "reloaded list applies without a restart")
}

func TestCORSPreflight(t *testing.T) {
	r := router(CORS(NewOriginPolicy(nil)))
	r.OPTIONS("/x", func(c *gin.Context) { c.Status(http.StatusTeapot) })
	w := get(r, http.MethodOptions, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSecureHeaders(t *testing.T) {
	w := get(router(Secure()), http.MethodGet, "")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestRateLimiter(t *testing.T) {
	r := router(RateLimiter(2, time.Hour))
	assert.Equal(t, http.StatusOK, get(r, http.MethodGet, "").Code)
	assert.Equal(t, http.StatusOK, get(r, http.MethodGet, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, http.MethodGet, "").Code)
}
