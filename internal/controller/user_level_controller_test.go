package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gamification_backend/internal/model"
	"gamification_backend/internal/repository"
	"gamification_backend/internal/service"
	"gamification_backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserLevelRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validation.Init()

	db := newTestDB(t)
	svc := service.NewUserLevelService(
		repository.NewUserLevelRepository(db),
		repository.NewLevelRepository(db),
		repository.NewUserRepository(db),
	)
	c := NewUserLevelController(svc)

	router := gin.New()
	router.GET("/api/user-levels", c.ListUserLevels)
	router.GET("/api/user-levels/:id", c.GetUserLevel)
	return router, db
}

func TestListUserLevelsNoFilters(t *testing.T) {
	router, _ := newUserLevelRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user-levels", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListUserLevelsValidFilter(t *testing.T) {
	router, _ := newUserLevelRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user-levels?user_id=1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListUserLevelsNegativeFilter(t *testing.T) {
	router, _ := newUserLevelRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user-levels?user_id=-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	details := decodeDetails(t, w.Body.String())
	assert.Contains(t, details, "user_id")
}

func TestGetUserLevelIDValidation(t *testing.T) {
	router, db := newUserLevelRouter(t)

	user := &model.User{Name: "alex", Email: "alex@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	level := &model.Level{Name: "Bronze", Tier: 1}
	require.NoError(t, db.Create(level).Error)
	record := &model.UserLevel{UserID: user.ID, LevelID: level.ID}
	require.NoError(t, db.Create(record).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user-levels/0", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/user-levels/abc", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/user-levels/999", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/user-levels/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
