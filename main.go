// @title Gamification API
// @version 1.0
// @description Badge, user-badge and user-level CRUD service.

// @host localhost:4000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"log"

	"gamification_backend/internal/app"
	"gamification_backend/internal/config"
	"gamification_backend/pkg/configwatcher"
	"gamification_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.ReloadConfig)

	application.Run()
}
