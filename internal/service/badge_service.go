package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gamification_backend/internal/model"
	"gamification_backend/internal/repository"
	"gamification_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	badgeListCacheKey = "badges:all"
	badgeListCacheTTL = 5 * time.Minute
)

type BadgeService struct {
	BadgeRepo *repository.BadgeRepository
	Redis     *redis.Client
}

func NewBadgeService(badgeRepo *repository.BadgeRepository, rdb *redis.Client) *BadgeService {
	return &BadgeService{
		BadgeRepo: badgeRepo,
		Redis:     rdb,
	}
}

type BadgeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"omitempty,max=255"`
	Criteria    string `json:"criteria"`
	Points      int    `json:"points" binding:"min=0"`
}

// ListBadges returns every badge. The list is cached in redis so the
// public endpoints and the GraphQL resolver don't hit the database on
// every call.
func (s *BadgeService) ListBadges() ([]model.Badge, error) {
	ctx := context.Background()

	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, badgeListCacheKey).Result()
		if err == nil {
			var cached []model.Badge
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	badges, err := s.BadgeRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if encoded, err := json.Marshal(badges); err == nil {
			s.Redis.Set(ctx, badgeListCacheKey, encoded, badgeListCacheTTL)
		}
	}

	return badges, nil
}

func (s *BadgeService) GetBadge(id uint) (*model.Badge, error) {
	badge, err := s.BadgeRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrBadgeNotFound
	}
	if err != nil {
		return nil, err
	}
	return badge, nil
}

func (s *BadgeService) CreateBadge(req BadgeRequest) (*model.Badge, error) {
	_, err := s.BadgeRepo.FindByName(req.Name)
	if err == nil {
		return nil, util.ErrBadgeAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	badge := &model.Badge{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Criteria:    req.Criteria,
		Points:      req.Points,
	}
	if err := s.BadgeRepo.Create(badge); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	return badge, nil
}

func (s *BadgeService) UpdateBadge(id uint, req BadgeRequest) (*model.Badge, error) {
	badge, err := s.GetBadge(id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.BadgeRepo.FindByName(req.Name); err == nil && existing.ID != id {
		return nil, util.ErrBadgeAlreadyExists
	}

	badge.Name = req.Name
	badge.Description = req.Description
	badge.Icon = req.Icon
	badge.Criteria = req.Criteria
	badge.Points = req.Points
	if err := s.BadgeRepo.Update(badge); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	return badge, nil
}

func (s *BadgeService) DeleteBadge(id uint) error {
	if _, err := s.GetBadge(id); err != nil {
		return err
	}
	if err := s.BadgeRepo.Delete(id); err != nil {
		return err
	}

	s.invalidateListCache()
	return nil
}

// SetIcon persists the URL of an uploaded badge icon.
func (s *BadgeService) SetIcon(id uint, url string) (*model.Badge, error) {
	badge, err := s.GetBadge(id)
	if err != nil {
		return nil, err
	}

	badge.Icon = url
	if err := s.BadgeRepo.Update(badge); err != nil {
		return nil, err
	}

	s.invalidateListCache()
	return badge, nil
}

func (s *BadgeService) invalidateListCache() {
	if s.Redis != nil {
		s.Redis.Del(context.Background(), badgeListCacheKey)
	}
}
