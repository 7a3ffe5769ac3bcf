// Package graph exposes the badge catalog and the per-user associations
// over GraphQL. The resolver talks to plain capability interfaces so the
// schema can be built against the real services or test fakes alike.
package graph

import (
	"gamification_backend/internal/model"
	"gamification_backend/internal/service"
)

type BadgeProvider interface {
	ListBadges() ([]model.Badge, error)
	GetBadge(id uint) (*model.Badge, error)
}

type UserBadgeProvider interface {
	List(q service.UserBadgeQuery) ([]model.UserBadge, error)
}

type UserLevelProvider interface {
	List(q service.UserLevelQuery) ([]model.UserLevel, error)
}

type Resolver struct {
	Badges     BadgeProvider
	UserBadges UserBadgeProvider
	UserLevels UserLevelProvider
}

func NewResolver(badges BadgeProvider, userBadges UserBadgeProvider, userLevels UserLevelProvider) *Resolver {
	return &Resolver{
		Badges:     badges,
		UserBadges: userBadges,
		UserLevels: userLevels,
	}
}
