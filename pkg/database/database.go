package database

import (
	"fmt"
	"log"

	"gamification_backend/internal/config"
	"gamification_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Badge{},
		&model.UserBadge{},
		&model.Level{},
		&model.UserLevel{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := Seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Seed inserts the default badge and level catalog when the tables are
// empty, so a fresh deployment has something to award.
func Seed(db *gorm.DB) error {
	var badgeCount int64
	db.Model(&model.Badge{}).Count(&badgeCount)
	if badgeCount == 0 {
		defaultBadges := []model.Badge{
			{Name: "First Steps", Description: "Completed the first activity", Criteria: "complete 1 activity", Points: 10},
			{Name: "Streak Week", Description: "Active seven days in a row", Criteria: "7 day streak", Points: 50},
			{Name: "Centurion", Description: "Earned one hundred points", Criteria: "100 points total", Points: 100},
		}
		for _, b := range defaultBadges {
			if err := db.Create(&b).Error; err != nil {
				return err
			}
		}
	}

	var levelCount int64
	db.Model(&model.Level{}).Count(&levelCount)
	if levelCount == 0 {
		defaultLevels := []model.Level{
			{Name: "Bronze", Tier: 1, MinXP: 0},
			{Name: "Silver", Tier: 2, MinXP: 500},
			{Name: "Gold", Tier: 3, MinXP: 2000},
		}
		for _, l := range defaultLevels {
			if err := db.Create(&l).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
