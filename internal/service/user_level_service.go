package service

import (
	"errors"

	"gamification_backend/internal/model"
	"gamification_backend/internal/repository"
	"gamification_backend/internal/util"

	"gorm.io/gorm"
)

type UserLevelService struct {
	UserLevelRepo *repository.UserLevelRepository
	LevelRepo     *repository.LevelRepository
	UserRepo      *repository.UserRepository
}

func NewUserLevelService(
	userLevelRepo *repository.UserLevelRepository,
	levelRepo *repository.LevelRepository,
	userRepo *repository.UserRepository,
) *UserLevelService {
	return &UserLevelService{
		UserLevelRepo: userLevelRepo,
		LevelRepo:     levelRepo,
		UserRepo:      userRepo,
	}
}

// UserLevelQuery filters the list endpoint. Both fields absent means
// every record.
type UserLevelQuery struct {
	UserID  *int `form:"user_id" binding:"omitempty,min=1"`
	LevelID *int `form:"level_id" binding:"omitempty,min=1"`
}

type UserLevelRequest struct {
	UserID     int    `json:"user_id" binding:"required,min=1"`
	LevelID    int    `json:"level_id" binding:"required,min=1"`
	XP         int    `json:"xp" binding:"min=0"`
	AttainedAt string `json:"attained_at"`
}

func (s *UserLevelService) List(q UserLevelQuery) ([]model.UserLevel, error) {
	var userID, levelID uint
	if q.UserID != nil {
		userID = uint(*q.UserID)
	}
	if q.LevelID != nil {
		levelID = uint(*q.LevelID)
	}
	return s.UserLevelRepo.Find(userID, levelID)
}

func (s *UserLevelService) Get(id uint) (*model.UserLevel, error) {
	userLevel, err := s.UserLevelRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserLevelNotFound
	}
	if err != nil {
		return nil, err
	}
	return userLevel, nil
}

func (s *UserLevelService) Grant(req UserLevelRequest) (*model.UserLevel, error) {
	attainedAt, err := util.ParseTimestamp(req.AttainedAt)
	if err != nil {
		return nil, err
	}

	if _, err := s.UserRepo.FindByID(uint(req.UserID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.LevelRepo.FindByID(uint(req.LevelID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLevelNotFound
		}
		return nil, err
	}

	if _, err := s.UserLevelRepo.FindByUserAndLevel(uint(req.UserID), uint(req.LevelID)); err == nil {
		return nil, util.ErrLevelAlreadyHeld
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userLevel := &model.UserLevel{
		UserID:     uint(req.UserID),
		LevelID:    uint(req.LevelID),
		XP:         req.XP,
		AttainedAt: attainedAt,
	}
	if err := s.UserLevelRepo.Create(userLevel); err != nil {
		return nil, err
	}

	return s.Get(userLevel.ID)
}

func (s *UserLevelService) Update(id uint, req UserLevelRequest) (*model.UserLevel, error) {
	attainedAt, err := util.ParseTimestamp(req.AttainedAt)
	if err != nil {
		return nil, err
	}

	userLevel, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.UserRepo.FindByID(uint(req.UserID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.LevelRepo.FindByID(uint(req.LevelID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLevelNotFound
		}
		return nil, err
	}
	if other, err := s.UserLevelRepo.FindByUserAndLevel(uint(req.UserID), uint(req.LevelID)); err == nil {
		if other.ID != id {
			return nil, util.ErrLevelAlreadyHeld
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userLevel.UserID = uint(req.UserID)
	userLevel.LevelID = uint(req.LevelID)
	userLevel.XP = req.XP
	if attainedAt != nil {
		userLevel.AttainedAt = attainedAt
	}
	if err := s.UserLevelRepo.Update(userLevel); err != nil {
		return nil, err
	}

	return s.Get(id)
}

func (s *UserLevelService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.UserLevelRepo.Delete(id)
}
