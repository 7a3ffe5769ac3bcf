package service

import (
	"errors"

	"gamification_backend/internal/model"
	"gamification_backend/internal/repository"
	"gamification_backend/internal/util"

	"gorm.io/gorm"
)

type LevelService struct {
	LevelRepo *repository.LevelRepository
}

func NewLevelService(levelRepo *repository.LevelRepository) *LevelService {
	return &LevelService{LevelRepo: levelRepo}
}

type LevelRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Tier        int    `json:"tier" binding:"required,min=1"`
	MinXP       int    `json:"min_xp" binding:"min=0"`
	Description string `json:"description"`
}

func (s *LevelService) ListLevels() ([]model.Level, error) {
	return s.LevelRepo.FindAll()
}

func (s *LevelService) GetLevel(id uint) (*model.Level, error) {
	level, err := s.LevelRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLevelNotFound
	}
	if err != nil {
		return nil, err
	}
	return level, nil
}

func (s *LevelService) CreateLevel(req LevelRequest) (*model.Level, error) {
	level := &model.Level{
		Name:        req.Name,
		Tier:        req.Tier,
		MinXP:       req.MinXP,
		Description: req.Description,
	}
	if err := s.LevelRepo.Create(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *LevelService) UpdateLevel(id uint, req LevelRequest) (*model.Level, error) {
	level, err := s.GetLevel(id)
	if err != nil {
		return nil, err
	}

	level.Name = req.Name
	level.Tier = req.Tier
	level.MinXP = req.MinXP
	level.Description = req.Description
	if err := s.LevelRepo.Update(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *LevelService) DeleteLevel(id uint) error {
	if _, err := s.GetLevel(id); err != nil {
		return err
	}
	return s.LevelRepo.Delete(id)
}
