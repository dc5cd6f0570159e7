package app

import (
	"career_compass_backend/docs"
	"career_compass_backend/internal/config"
	"career_compass_backend/internal/middleware"
	"career_compass_backend/internal/service"
	"career_compass_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	// 所有请求都先经过会话空闲检查，未携带令牌时不做处理
	router.Use(middleware.InactivityMiddleware(a.services.sessions, cfg.JWT.Secret))

	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/")
	authGroup.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	a.registerUserRoutes(authGroup, c)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	router.GET("/health", c.health.HealthCheck)
	router.POST("/register", c.auth.Register)
	router.POST("/login", c.auth.Login)
	router.GET("/uploads/:filename", c.user.ServeUpload)

	router.GET("/quiz-variants", c.quiz.ListVariants)
	for _, v := range service.QuizVariants() {
		router.GET("/generate-quiz"+v.RouteSuffix, c.quiz.Generate(v))
	}
}

func (a *App) registerUserRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/profile", c.user.GetProfile)
	group.POST("/logout", c.auth.Logout)
	group.POST("/upload-photo", c.user.UploadPhoto)

	for _, v := range service.QuizVariants() {
		group.POST("/evaluate-quiz"+v.RouteSuffix, c.quiz.Evaluate(v))
	}
	group.GET("/user-quiz-results", c.quiz.ListResults)
}
