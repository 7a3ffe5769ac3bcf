package repository

import (
	"gamification_backend/internal/model"

	"gorm.io/gorm"
)

type UserLevelRepository struct {
	DB *gorm.DB
}

func NewUserLevelRepository(db *gorm.DB) *UserLevelRepository {
	return &UserLevelRepository{DB: db}
}

// Find returns user levels matching the optional filters. Zero means no
// constraint on that column.
func (r *UserLevelRepository) Find(userID, levelID uint) ([]model.UserLevel, error) {
	query := r.DB.Preload("Level")
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if levelID != 0 {
		query = query.Where("level_id = ?", levelID)
	}

	var userLevels []model.UserLevel
	err := query.Order("created_at desc").Find(&userLevels).Error
	if err != nil {
		return nil, err
	}
	return userLevels, nil
}

func (r *UserLevelRepository) FindByID(id uint) (*model.UserLevel, error) {
	var userLevel model.UserLevel
	err := r.DB.Preload("Level").First(&userLevel, id).Error
	if err != nil {
		return nil, err
	}
	return &userLevel, nil
}

func (r *UserLevelRepository) FindByUserAndLevel(userID, levelID uint) (*model.UserLevel, error) {
	var userLevel model.UserLevel
	err := r.DB.Where("user_id = ? AND level_id = ?", userID, levelID).First(&userLevel).Error
	if err != nil {
		return nil, err
	}
	return &userLevel, nil
}

func (r *UserLevelRepository) Create(userLevel *model.UserLevel) error {
	return r.DB.Create(userLevel).Error
}

func (r *UserLevelRepository) Update(userLevel *model.UserLevel) error {
	return r.DB.Save(userLevel).Error
}

// Delete removes the row outright. A soft-deleted row would keep the
// user/level pair occupied in the unique index and block re-granting.
func (r *UserLevelRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.UserLevel{}, id).Error
}
