package repository

import (
	"gamification_backend/internal/model"

	"gorm.io/gorm"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) FindAll() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Order("created_at desc").Find(&badges).Error
	if err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *BadgeRepository) FindByID(id uint) (*model.Badge, error) {
	var badge model.Badge
	err := r.DB.First(&badge, id).Error
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *BadgeRepository) FindByName(name string) (*model.Badge, error) {
	var badge model.Badge
	err := r.DB.Where("name = ?", name).First(&badge).Error
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *BadgeRepository) Create(badge *model.Badge) error {
	return r.DB.Create(badge).Error
}

func (r *BadgeRepository) Update(badge *model.Badge) error {
	return r.DB.Save(badge).Error
}

// Delete removes the row outright so the name can be reused.
func (r *BadgeRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.Badge{}, id).Error
}
