package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gamification_backend/internal/model"
	"gamification_backend/internal/repository"
	"gamification_backend/internal/service"
	"gamification_backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Badge{},
		&model.UserBadge{},
		&model.Level{},
		&model.UserLevel{},
	))

	return db
}

func newUserBadgeRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validation.Init()

	db := newTestDB(t)
	svc := service.NewUserBadgeService(
		repository.NewUserBadgeRepository(db),
		repository.NewBadgeRepository(db),
		repository.NewUserRepository(db),
	)
	c := NewUserBadgeController(svc)

	router := gin.New()
	router.GET("/api/user-badges", c.ListUserBadges)
	router.GET("/api/user-badges/:id", c.GetUserBadge)
	router.POST("/api/user-badges", c.AwardBadge)
	router.PUT("/api/user-badges/:id", c.UpdateUserBadge)
	router.DELETE("/api/user-badges/:id", c.RevokeUserBadge)
	return router, db
}

func seedAwardTargets(t *testing.T, db *gorm.DB) (*model.User, *model.Badge) {
	t.Helper()

	user := &model.User{Name: "alex", Email: "alex@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	badge := &model.Badge{Name: "First Steps"}
	require.NoError(t, db.Create(badge).Error)
	return user, badge
}

func decodeDetails(t *testing.T, body string) map[string]string {
	t.Helper()

	var envelope struct {
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return envelope.Details
}

func TestAwardBadgeValidBody(t *testing.T) {
	router, db := newUserBadgeRouter(t)
	user, badge := seedAwardTargets(t, db)

	body := fmt.Sprintf(`{"user_id": %d, "badge_id": %d, "earned_at": "2024-01-01"}`, user.ID, badge.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user-badges", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAwardBadgeUserIDZero(t *testing.T) {
	router, db := newUserBadgeRouter(t)
	_, badge := seedAwardTargets(t, db)

	body := fmt.Sprintf(`{"user_id": 0, "badge_id": %d}`, badge.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user-badges", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	details := decodeDetails(t, w.Body.String())
	assert.Contains(t, details, "user_id")
}

func TestAwardBadgeMissingBadgeID(t *testing.T) {
	router, db := newUserBadgeRouter(t)
	user, _ := seedAwardTargets(t, db)

	body := fmt.Sprintf(`{"user_id": %d}`, user.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user-badges", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	details := decodeDetails(t, w.Body.String())
	assert.Contains(t, details, "badge_id")
}

func TestAwardBadgeInvalidEarnedAt(t *testing.T) {
	router, db := newUserBadgeRouter(t)
	user, badge := seedAwardTargets(t, db)

	body := fmt.Sprintf(`{"user_id": %d, "badge_id": %d, "earned_at": "not-a-date"}`, user.ID, badge.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user-badges", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAwardBadgeDuplicate(t *testing.T) {
	router, db := newUserBadgeRouter(t)
	user, badge := seedAwardTargets(t, db)
	require.NoError(t, db.Create(&model.UserBadge{UserID: user.ID, BadgeID: badge.ID}).Error)

	body := fmt.Sprintf(`{"user_id": %d, "badge_id": %d}`, user.ID, badge.ID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user-badges", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetUserBadgeInvalidID(t *testing.T) {
	router, _ := newUserBadgeRouter(t)

	for _, id := range []string{"0", "-3", "abc"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/user-badges/"+id, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "id=%s", id)
	}
}

func TestGetUserBadgeNotFound(t *testing.T) {
	router, _ := newUserBadgeRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user-badges/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListUserBadgesQueryValidation(t *testing.T) {
	router, _ := newUserBadgeRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user-badges?user_id=-1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/user-badges", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
