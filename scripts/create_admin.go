// Creates or promotes an admin account.
//
// Self-registration always produces a regular user, so a fresh deployment
// has no way to reach the admin endpoints. Run this once after the first
// deploy, or whenever an existing account needs admin rights.
//
// Usage: go run scripts/create_admin.go <email> <name> <password>

package main

import (
	"errors"
	"log"
	"os"

	"gamification_backend/internal/config"
	"gamification_backend/internal/model"
	"gamification_backend/pkg/database"
	"gamification_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) != 4 {
		log.Fatalf("usage: %s <email> <name> <password>", os.Args[0])
	}
	email, name, password := os.Args[1], os.Args[2], os.Args[3]

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	var user model.User
	err = db.Where("email = ?", email).First(&user).Error
	switch {
	case err == nil:
		user.Role = model.RoleAdmin
		if err := db.Save(&user).Error; err != nil {
			log.Fatalf("failed to promote user: %v", err)
		}
		log.Printf("promoted existing user %s to admin", email)
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		user = model.User{
			Name:     name,
			Email:    email,
			Password: string(hash),
			Role:     model.RoleAdmin,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("failed to create admin: %v", err)
		}
		log.Printf("created admin %s", email)
	default:
		log.Fatalf("failed to look up user: %v", err)
	}
}
