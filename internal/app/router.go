package app

import (
	"kidquiz_backend/docs"
	"kidquiz_backend/internal/config"
	"kidquiz_backend/internal/middleware"
	"kidquiz_backend/internal/model"
	"kidquiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.Use(middleware.RequestLogger())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/signup", c.auth.Signup)
		public.POST("/login", c.auth.Login)
		public.GET("/quiz/:subject", c.quiz.GetQuiz)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// Kid or parent: target gated per-request by the access policy.
		shared := authGroup.Group("/")
		shared.Use(middleware.RoleMiddleware(model.Kid, model.Parent))
		{
			shared.GET("/dashboard/:id", c.dashboard.GetDashboard)
			shared.GET("/rewards/:id", c.reward.GetRewards)
			shared.GET("/leaderboard", c.dashboard.GetLeaderboard)
		}

		kid := authGroup.Group("/")
		kid.Use(middleware.RoleMiddleware(model.Kid))
		{
			kid.POST("/submit-quiz", c.quiz.SubmitQuiz)
			kid.POST("/rewards/:id/spin", c.reward.Spin)
		}

		parent := authGroup.Group("/parent")
		parent.Use(middleware.RoleMiddleware(model.Parent))
		{
			parent.GET("/:id", c.parent.GetChildSummary)
			parent.POST("/children", c.parent.LinkChild)
		}
	}
}
