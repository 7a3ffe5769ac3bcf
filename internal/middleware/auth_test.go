package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamification_backend/internal/config"
	"gamification_backend/internal/model"
	"gamification_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configWithSecret(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func newProtectedRouter(current func() *config.Config, roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/")
	group.Use(AuthMiddleware(current))
	if len(roles) > 0 {
		group.Use(RoleMiddleware(roles...))
	}
	group.GET("/protected", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func tokenFor(t *testing.T, role model.UserRole, secret string) string {
	t.Helper()

	user := &model.User{Name: "alex", Email: "alex@example.com", Role: role}
	user.ID = 1
	token, err := util.GenerateJWT(user, secret, time.Hour)
	require.NoError(t, err)
	return token
}

func get(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	cfg := configWithSecret("secret-a")
	router := newProtectedRouter(func() *config.Config { return cfg })

	w := get(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := configWithSecret("secret-a")
	router := newProtectedRouter(func() *config.Config { return cfg })

	w := get(router, tokenFor(t, model.RoleUser, "secret-a"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareReadsLiveSecret(t *testing.T) {
	cfg := configWithSecret("secret-a")
	router := newProtectedRouter(func() *config.Config { return cfg })

	token := tokenFor(t, model.RoleUser, "secret-a")
	w := get(router, token)
	require.Equal(t, http.StatusOK, w.Code)

	cfg = configWithSecret("secret-b")
	w = get(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(router, tokenFor(t, model.RoleUser, "secret-b"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleMiddlewareForbidden(t *testing.T) {
	cfg := configWithSecret("secret-a")
	router := newProtectedRouter(func() *config.Config { return cfg }, model.RoleAdmin)

	w := get(router, tokenFor(t, model.RoleUser, "secret-a"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), util.ErrPermissionDenied.Error())
}

func TestRoleMiddlewareAdminAllowed(t *testing.T) {
	cfg := configWithSecret("secret-a")
	router := newProtectedRouter(func() *config.Config { return cfg }, model.RoleAdmin)

	w := get(router, tokenFor(t, model.RoleAdmin, "secret-a"))
	assert.Equal(t, http.StatusOK, w.Code)
}
