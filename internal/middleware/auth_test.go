package middleware

import (
	"net/http"
	"net/http/httptest"
	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/util"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func newRouter(roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: secret}}
	r := gin.New()
	chain := []gin.HandlerFunc{AuthMiddleware(cfg)}
	if len(roles) > 0 {
		chain = append(chain, RoleMiddleware(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		c.String(http.StatusOK, util.GetUserFromContext(c).UserID)
	})
	r.GET("/protected", chain...)
	return r
}

func token(t *testing.T, role model.UserRole) string {
	t.Helper()
	tok, err := util.GenerateJWT("u-42", role, secret, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()

	w := do(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, "Bearer "+token(t, model.Student))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-42", w.Body.String())
}

func TestRoleMiddleware(t *testing.T) {
	r := newRouter(model.Teacher)

	assert.Equal(t, http.StatusForbidden, do(r, "Bearer "+token(t, model.Student)).Code)
	assert.Equal(t, http.StatusOK, do(r, "Bearer "+token(t, model.Teacher)).Code)
	assert.Equal(t, http.StatusOK, do(r, "Bearer "+token(t, model.Admin)).Code, "admin inherits teacher access")
}
