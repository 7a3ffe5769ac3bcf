package service

import (
	"errors"

	"gamification_backend/internal/model"
	"gamification_backend/internal/repository"
	"gamification_backend/internal/util"

	"gorm.io/gorm"
)

type UserBadgeService struct {
	UserBadgeRepo *repository.UserBadgeRepository
	BadgeRepo     *repository.BadgeRepository
	UserRepo      *repository.UserRepository
}

func NewUserBadgeService(
	userBadgeRepo *repository.UserBadgeRepository,
	badgeRepo *repository.BadgeRepository,
	userRepo *repository.UserRepository,
) *UserBadgeService {
	return &UserBadgeService{
		UserBadgeRepo: userBadgeRepo,
		BadgeRepo:     badgeRepo,
		UserRepo:      userRepo,
	}
}

// UserBadgeRequest is the award/update body. EarnedAt is accepted as a
// string; the format is checked here, not by binding.
type UserBadgeRequest struct {
	UserID   int    `json:"user_id" binding:"required,min=1"`
	BadgeID  int    `json:"badge_id" binding:"required,min=1"`
	EarnedAt string `json:"earned_at"`
}

// UserBadgeQuery filters the list endpoint. Absent fields mean no
// constraint.
type UserBadgeQuery struct {
	UserID  *int `form:"user_id" binding:"omitempty,min=1"`
	BadgeID *int `form:"badge_id" binding:"omitempty,min=1"`
}

func (s *UserBadgeService) List(q UserBadgeQuery) ([]model.UserBadge, error) {
	var userID, badgeID uint
	if q.UserID != nil {
		userID = uint(*q.UserID)
	}
	if q.BadgeID != nil {
		badgeID = uint(*q.BadgeID)
	}
	return s.UserBadgeRepo.Find(userID, badgeID)
}

func (s *UserBadgeService) Get(id uint) (*model.UserBadge, error) {
	userBadge, err := s.UserBadgeRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserBadgeNotFound
	}
	if err != nil {
		return nil, err
	}
	return userBadge, nil
}

func (s *UserBadgeService) Award(req UserBadgeRequest) (*model.UserBadge, error) {
	earnedAt, err := util.ParseTimestamp(req.EarnedAt)
	if err != nil {
		return nil, err
	}

	if _, err := s.UserRepo.FindByID(uint(req.UserID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.BadgeRepo.FindByID(uint(req.BadgeID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrBadgeNotFound
		}
		return nil, err
	}

	if _, err := s.UserBadgeRepo.FindByUserAndBadge(uint(req.UserID), uint(req.BadgeID)); err == nil {
		return nil, util.ErrBadgeAlreadyEarned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userBadge := &model.UserBadge{
		UserID:   uint(req.UserID),
		BadgeID:  uint(req.BadgeID),
		EarnedAt: earnedAt,
	}
	if err := s.UserBadgeRepo.Create(userBadge); err != nil {
		return nil, err
	}

	return s.Get(userBadge.ID)
}

func (s *UserBadgeService) Update(id uint, req UserBadgeRequest) (*model.UserBadge, error) {
	earnedAt, err := util.ParseTimestamp(req.EarnedAt)
	if err != nil {
		return nil, err
	}

	userBadge, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if _, err := s.UserRepo.FindByID(uint(req.UserID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.BadgeRepo.FindByID(uint(req.BadgeID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrBadgeNotFound
		}
		return nil, err
	}
	if other, err := s.UserBadgeRepo.FindByUserAndBadge(uint(req.UserID), uint(req.BadgeID)); err == nil {
		if other.ID != id {
			return nil, util.ErrBadgeAlreadyEarned
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	userBadge.UserID = uint(req.UserID)
	userBadge.BadgeID = uint(req.BadgeID)
	if earnedAt != nil {
		userBadge.EarnedAt = earnedAt
	}
	if err := s.UserBadgeRepo.Update(userBadge); err != nil {
		return nil, err
	}

	return s.Get(id)
}

func (s *UserBadgeService) Revoke(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.UserBadgeRepo.Delete(id)
}
