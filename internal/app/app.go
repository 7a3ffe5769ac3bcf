package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"gamification_backend/internal/config"
	"gamification_backend/internal/controller"
	"gamification_backend/internal/graph"
	"gamification_backend/internal/repository"
	"gamification_backend/internal/service"
	"gamification_backend/pkg/database"
	"gamification_backend/pkg/logger"
	"gamification_backend/pkg/monitoring"
	"gamification_backend/pkg/security"
	"gamification_backend/pkg/tracing"
	"gamification_backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	mu sync.RWMutex // guards Config against the reload goroutine
}

type repositories struct {
	user      *repository.UserRepository
	badge     *repository.BadgeRepository
	userBadge *repository.UserBadgeRepository
	level     *repository.LevelRepository
	userLevel *repository.UserLevelRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	badge     *service.BadgeService
	userBadge *service.UserBadgeService
	level     *service.LevelService
	userLevel *service.UserLevelService
}

type controllers struct {
	auth      *controller.AuthController
	badge     *controller.BadgeController
	userBadge *controller.UserBadgeController
	level     *controller.LevelController
	userLevel *controller.UserLevelController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		badge:     repository.NewBadgeRepository(db),
		userBadge: repository.NewUserBadgeRepository(db),
		level:     repository.NewLevelRepository(db),
		userLevel: repository.NewUserLevelRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	return &services{
		auth:      service.NewAuthService(repos.user, a.CurrentConfig),
		storage:   storage,
		badge:     service.NewBadgeService(repos.badge, rdb),
		userBadge: service.NewUserBadgeService(repos.userBadge, repos.badge, repos.user),
		level:     service.NewLevelService(repos.level),
		userLevel: service.NewUserLevelService(repos.userLevel, repos.level, repos.user),
	}, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		badge:     controller.NewBadgeController(s.badge, s.storage),
		userBadge: controller.NewUserBadgeController(s.userBadge),
		level:     controller.NewLevelController(s.level),
		userLevel: controller.NewUserLevelController(s.userLevel),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window == 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	validation.Init()

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		return nil, err
	}
	ctrls := app.initControllers(services, db)

	resolver := graph.NewResolver(services.badge, services.userBadge, services.userLevel)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, err
	}

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("gamification-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			return nil, err
		}
	}

	app.registerRoutes(router, ctrls, schema)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app, nil
}

// ReloadConfig swaps in a freshly parsed config. The old struct is never
// written to, so handlers that grabbed it through CurrentConfig keep a
// consistent snapshot.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.mu.Lock()
	a.Config = cfg
	a.mu.Unlock()
	logger.Log.Info("Configuration applied", zap.String("port", cfg.Server.Port))
}

// CurrentConfig returns the live config. Request handlers must read
// through here instead of caching App.Config.
func (a *App) CurrentConfig() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.Config
}

func (a *App) Run() {
	port := a.CurrentConfig().Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("API http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
