package service

import (
	"testing"

	"gamification_backend/internal/model"
	"gamification_backend/internal/repository"
	"gamification_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserLevelService(t *testing.T) (*UserLevelService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewUserLevelService(
		repository.NewUserLevelRepository(db),
		repository.NewLevelRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, db
}

func seedUserAndLevels(t *testing.T, db *gorm.DB) (*model.User, []model.Level) {
	t.Helper()

	user := &model.User{Name: "alex", Email: "alex@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	levels := []model.Level{
		{Name: "Bronze", Tier: 1, MinXP: 0},
		{Name: "Silver", Tier: 2, MinXP: 500},
	}
	for i := range levels {
		require.NoError(t, db.Create(&levels[i]).Error)
	}
	return user, levels
}

func TestGrantUserLevel(t *testing.T) {
	svc, db := newUserLevelService(t)
	user, levels := seedUserAndLevels(t, db)

	userLevel, err := svc.Grant(UserLevelRequest{
		UserID:  int(user.ID),
		LevelID: int(levels[0].ID),
		XP:      120,
	})
	require.NoError(t, err)
	assert.Equal(t, 120, userLevel.XP)
	assert.Equal(t, "Bronze", userLevel.Level.Name)

	_, err = svc.Grant(UserLevelRequest{UserID: int(user.ID), LevelID: int(levels[0].ID)})
	assert.ErrorIs(t, err, util.ErrLevelAlreadyHeld)

	_, err = svc.Grant(UserLevelRequest{UserID: int(user.ID), LevelID: 999})
	assert.ErrorIs(t, err, util.ErrLevelNotFound)

	_, err = svc.Grant(UserLevelRequest{UserID: 999, LevelID: int(levels[1].ID)})
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestListUserLevelsUnfiltered(t *testing.T) {
	svc, db := newUserLevelService(t)
	user, levels := seedUserAndLevels(t, db)

	for _, l := range levels {
		require.NoError(t, db.Create(&model.UserLevel{UserID: user.ID, LevelID: l.ID}).Error)
	}

	all, err := svc.List(UserLevelQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListUserLevelsFiltered(t *testing.T) {
	svc, db := newUserLevelService(t)
	user, levels := seedUserAndLevels(t, db)
	other := &model.User{Name: "sam", Email: "sam@example.com", Password: "x"}
	require.NoError(t, db.Create(other).Error)

	require.NoError(t, db.Create(&model.UserLevel{UserID: user.ID, LevelID: levels[0].ID}).Error)
	require.NoError(t, db.Create(&model.UserLevel{UserID: other.ID, LevelID: levels[1].ID}).Error)

	levelID := int(levels[1].ID)
	got, err := svc.List(UserLevelQuery{LevelID: &levelID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, other.ID, got[0].UserID)

	userID := int(user.ID)
	got, err = svc.List(UserLevelQuery{UserID: &userID, LevelID: &levelID})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRegrantAfterDelete(t *testing.T) {
	svc, db := newUserLevelService(t)
	user, levels := seedUserAndLevels(t, db)

	first, err := svc.Grant(UserLevelRequest{UserID: int(user.ID), LevelID: int(levels[0].ID)})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(first.ID))

	second, err := svc.Grant(UserLevelRequest{UserID: int(user.ID), LevelID: int(levels[0].ID)})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestUpdateUserLevelDanglingReferences(t *testing.T) {
	svc, db := newUserLevelService(t)
	user, levels := seedUserAndLevels(t, db)
	record := &model.UserLevel{UserID: user.ID, LevelID: levels[0].ID}
	require.NoError(t, db.Create(record).Error)

	_, err := svc.Update(record.ID, UserLevelRequest{UserID: 999, LevelID: int(levels[0].ID)})
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	_, err = svc.Update(record.ID, UserLevelRequest{UserID: int(user.ID), LevelID: 999})
	assert.ErrorIs(t, err, util.ErrLevelNotFound)

	require.NoError(t, db.Create(&model.UserLevel{UserID: user.ID, LevelID: levels[1].ID}).Error)
	_, err = svc.Update(record.ID, UserLevelRequest{UserID: int(user.ID), LevelID: int(levels[1].ID)})
	assert.ErrorIs(t, err, util.ErrLevelAlreadyHeld)
}

func TestUpdateAndDeleteUserLevel(t *testing.T) {
	svc, db := newUserLevelService(t)
	user, levels := seedUserAndLevels(t, db)
	record := &model.UserLevel{UserID: user.ID, LevelID: levels[0].ID, XP: 10}
	require.NoError(t, db.Create(record).Error)

	updated, err := svc.Update(record.ID, UserLevelRequest{
		UserID:     int(user.ID),
		LevelID:    int(levels[0].ID),
		XP:         300,
		AttainedAt: "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 300, updated.XP)
	require.NotNil(t, updated.AttainedAt)

	require.NoError(t, svc.Delete(record.ID))
	_, err = svc.Get(record.ID)
	assert.ErrorIs(t, err, util.ErrUserLevelNotFound)
}
