package model

import "time"

// UserBadge links a user to a badge they earned. A user holds a given badge
// at most once.
// swagger:model UserBadge
type UserBadge struct {
	BaseModel
	UserID   uint       `gorm:"index;uniqueIndex:idx_user_badge;not null" json:"userId"`
	BadgeID  uint       `gorm:"uniqueIndex:idx_user_badge;not null" json:"badgeId"`
	EarnedAt *time.Time `json:"earnedAt,omitempty"`

	Badge Badge `gorm:"foreignKey:BadgeID" json:"badge"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
