package model

import "time"

// UserLevel records that a user reached a level, with the XP they carried at
// the time.
// swagger:model UserLevel
type UserLevel struct {
	BaseModel
	UserID     uint       `gorm:"index;uniqueIndex:idx_user_level;not null" json:"userId"`
	LevelID    uint       `gorm:"uniqueIndex:idx_user_level;not null" json:"levelId"`
	XP         int        `gorm:"default:0" json:"xp"`
	AttainedAt *time.Time `json:"attainedAt,omitempty"`

	Level Level `gorm:"foreignKey:LevelID" json:"level"`
}

func (UserLevel) TableName() string {
	return "user_levels"
}
