package model

// swagger:model Level
type Level struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Tier        int    `gorm:"uniqueIndex;not null" json:"tier"`
	MinXP       int    `gorm:"default:0" json:"minXp"`
	Description string `gorm:"type:text" json:"description"`
}

func (Level) TableName() string {
	return "levels"
}
