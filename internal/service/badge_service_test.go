package service

import (
	"fmt"
	"testing"

	"gamification_backend/internal/model"
	"gamification_backend/internal/repository"
	"gamification_backend/internal/util"

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

func newBadgeService(t *testing.T) (*BadgeService, *gorm.DB) {
	db := newTestDB(t)
	return NewBadgeService(repository.NewBadgeRepository(db), nil), db
}

func TestListBadgesEmpty(t *testing.T) {
	svc, _ := newBadgeService(t)

	badges, err := svc.ListBadges()
	require.NoError(t, err)
	assert.Empty(t, badges)
}

func TestListBadges(t *testing.T) {
	svc, db := newBadgeService(t)
	require.NoError(t, db.Create(&model.Badge{Name: "First Steps", Points: 10}).Error)
	require.NoError(t, db.Create(&model.Badge{Name: "Centurion", Points: 100}).Error)

	badges, err := svc.ListBadges()
	require.NoError(t, err)
	assert.Len(t, badges, 2)
}

func TestGetBadge(t *testing.T) {
	svc, db := newBadgeService(t)
	badge := &model.Badge{Name: "Streak Week", Points: 50}
	require.NoError(t, db.Create(badge).Error)

	got, err := svc.GetBadge(badge.ID)
	require.NoError(t, err)
	assert.Equal(t, "Streak Week", got.Name)
}

func TestGetBadgeNotFound(t *testing.T) {
	svc, _ := newBadgeService(t)

	_, err := svc.GetBadge(999)
	require.ErrorIs(t, err, util.ErrBadgeNotFound)
	assert.Equal(t, "Badge not found", err.Error())
}

func TestCreateBadge(t *testing.T) {
	svc, _ := newBadgeService(t)

	badge, err := svc.CreateBadge(BadgeRequest{Name: "Night Owl", Description: "Active after midnight", Points: 25})
	require.NoError(t, err)
	assert.NotZero(t, badge.ID)

	_, err = svc.CreateBadge(BadgeRequest{Name: "Night Owl"})
	assert.ErrorIs(t, err, util.ErrBadgeAlreadyExists)
}

func TestUpdateBadge(t *testing.T) {
	svc, db := newBadgeService(t)
	badge := &model.Badge{Name: "Original", Points: 5}
	require.NoError(t, db.Create(badge).Error)

	updated, err := svc.UpdateBadge(badge.ID, BadgeRequest{Name: "Renamed", Points: 15})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 15, updated.Points)

	_, err = svc.UpdateBadge(999, BadgeRequest{Name: "Nope"})
	assert.ErrorIs(t, err, util.ErrBadgeNotFound)
}

func TestDeleteBadge(t *testing.T) {
	svc, db := newBadgeService(t)
	badge := &model.Badge{Name: "Ephemeral"}
	require.NoError(t, db.Create(badge).Error)

	require.NoError(t, svc.DeleteBadge(badge.ID))

	_, err := svc.GetBadge(badge.ID)
	assert.ErrorIs(t, err, util.ErrBadgeNotFound)

	assert.ErrorIs(t, svc.DeleteBadge(badge.ID), util.ErrBadgeNotFound)
}

func TestCreateBadgeAfterDelete(t *testing.T) {
	svc, _ := newBadgeService(t)

	badge, err := svc.CreateBadge(BadgeRequest{Name: "Phoenix", Points: 30})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteBadge(badge.ID))

	reborn, err := svc.CreateBadge(BadgeRequest{Name: "Phoenix", Points: 30})
	require.NoError(t, err)
	assert.NotEqual(t, badge.ID, reborn.ID)
}

func TestSetIcon(t *testing.T) {
	svc, db := newBadgeService(t)
	badge := &model.Badge{Name: "Iconic"}
	require.NoError(t, db.Create(badge).Error)

	updated, err := svc.SetIcon(badge.ID, "/uploads/badges/icon.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/badges/icon.png", updated.Icon)
}
