package model

// swagger:model Badge
type Badge struct {
	BaseModel
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:255" json:"icon"`
	Criteria    string `gorm:"type:text" json:"criteria"`
	Points      int    `gorm:"default:0" json:"points"`
}

func (Badge) TableName() string {
	return "badges"
}
