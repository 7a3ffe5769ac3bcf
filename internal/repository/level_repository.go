package repository

import (
	"gamification_backend/internal/model"

	"gorm.io/gorm"
)

type LevelRepository struct {
	DB *gorm.DB
}

func NewLevelRepository(db *gorm.DB) *LevelRepository {
	return &LevelRepository{DB: db}
}

func (r *LevelRepository) FindAll() ([]model.Level, error) {
	var levels []model.Level
	err := r.DB.Order("tier asc").Find(&levels).Error
	if err != nil {
		return nil, err
	}
	return levels, nil
}

func (r *LevelRepository) FindByID(id uint) (*model.Level, error) {
	var level model.Level
	err := r.DB.First(&level, id).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *LevelRepository) Create(level *model.Level) error {
	return r.DB.Create(level).Error
}

func (r *LevelRepository) Update(level *model.Level) error {
	return r.DB.Save(level).Error
}

// Delete removes the row outright so the tier can be reused.
func (r *LevelRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.Level{}, id).Error
}
