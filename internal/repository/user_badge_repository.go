package repository

import (
	"gamification_backend/internal/model"

	"gorm.io/gorm"
)

type UserBadgeRepository struct {
	DB *gorm.DB
}

func NewUserBadgeRepository(db *gorm.DB) *UserBadgeRepository {
	return &UserBadgeRepository{DB: db}
}

// Find returns user badges matching the optional filters. Zero means no
// constraint on that column.
func (r *UserBadgeRepository) Find(userID, badgeID uint) ([]model.UserBadge, error) {
	query := r.DB.Preload("Badge")
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if badgeID != 0 {
		query = query.Where("badge_id = ?", badgeID)
	}

	var userBadges []model.UserBadge
	err := query.Order("created_at desc").Find(&userBadges).Error
	if err != nil {
		return nil, err
	}
	return userBadges, nil
}

func (r *UserBadgeRepository) FindByID(id uint) (*model.UserBadge, error) {
	var userBadge model.UserBadge
	err := r.DB.Preload("Badge").First(&userBadge, id).Error
	if err != nil {
		return nil, err
	}
	return &userBadge, nil
}

func (r *UserBadgeRepository) FindByUserAndBadge(userID, badgeID uint) (*model.UserBadge, error) {
	var userBadge model.UserBadge
	err := r.DB.Where("user_id = ? AND badge_id = ?", userID, badgeID).First(&userBadge).Error
	if err != nil {
		return nil, err
	}
	return &userBadge, nil
}

func (r *UserBadgeRepository) Create(userBadge *model.UserBadge) error {
	return r.DB.Create(userBadge).Error
}

func (r *UserBadgeRepository) Update(userBadge *model.UserBadge) error {
	return r.DB.Save(userBadge).Error
}

// Delete removes the row outright. A soft-deleted row would keep the
// user/badge pair occupied in the unique index and block re-awarding.
func (r *UserBadgeRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.UserBadge{}, id).Error
}
