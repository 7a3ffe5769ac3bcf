package app

import (
	_ "gamification_backend/docs"
	"gamification_backend/internal/graph"
	"gamification_backend/internal/middleware"
	"gamification_backend/internal/model"
	"gamification_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, schema graphql.Schema) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	gqlHandler := graph.NewHandler(schema)
	router.POST("/graphql", gin.WrapH(gqlHandler))
	router.GET("/graphql", gin.WrapH(gqlHandler))

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.CurrentConfig))
	{
		a.registerUserRoutes(authGroup, c)
	}

	a.registerAdminRoutes(router, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		public.GET("/badges", c.badge.ListBadges)
		public.GET("/badges/:id", c.badge.GetBadge)
		public.GET("/levels", c.level.ListLevels)
		public.GET("/levels/:id", c.level.GetLevel)
	}
}

func (a *App) registerUserRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/user-badges", c.userBadge.ListUserBadges)
	rg.GET("/user-badges/:id", c.userBadge.GetUserBadge)
	rg.POST("/user-badges", c.userBadge.AwardBadge)
	rg.PUT("/user-badges/:id", c.userBadge.UpdateUserBadge)
	rg.DELETE("/user-badges/:id", c.userBadge.RevokeUserBadge)

	rg.GET("/user-levels", c.userLevel.ListUserLevels)
	rg.GET("/user-levels/:id", c.userLevel.GetUserLevel)
	rg.POST("/user-levels", c.userLevel.GrantUserLevel)
	rg.PUT("/user-levels/:id", c.userLevel.UpdateUserLevel)
	rg.DELETE("/user-levels/:id", c.userLevel.DeleteUserLevel)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(a.CurrentConfig), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/badges", c.badge.CreateBadge)
		admin.PUT("/badges/:id", c.badge.UpdateBadge)
		admin.DELETE("/badges/:id", c.badge.DeleteBadge)
		admin.POST("/badges/:id/icon", c.badge.UploadIcon)

		admin.POST("/levels", c.level.CreateLevel)
		admin.PUT("/levels/:id", c.level.UpdateLevel)
		admin.DELETE("/levels/:id", c.level.DeleteLevel)
	}
}
