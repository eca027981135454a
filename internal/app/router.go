package app

import (
	"quiz_progress_backend/docs"
	"quiz_progress_backend/internal/config"
	"quiz_progress_backend/internal/middleware"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		// 学生/通用 授权接口
		a.registerStudentRoutes(authGroup, c)

		// 教师相关接口
		a.registerTeacherRoutes(authGroup, c)

		// 管理员相关接口
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}
}

func (a *App) registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	plan := group.Group("/learning-plan")
	{
		plan.GET("", c.plan.GetPlan)
		plan.PUT("", c.plan.SavePlan)
		plan.PATCH("/status", c.plan.UpdateStatus)
		plan.GET("/progress", c.progress.GetProgress)
		plan.GET("/current-week", c.progress.GetCurrentWeek)
	}

	group.POST("/submissions", c.submission.Create)
	group.GET("/submissions", c.submission.List)
	group.GET("/assignments", c.assignment.GetSequence)

	group.GET("/profile", c.profile.GetProfile)
	group.PUT("/profile", c.profile.UpdateProfile)
}

func (a *App) registerTeacherRoutes(group *gin.RouterGroup, c *controllers) {
	teacher := group.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher, model.Admin))
	{
		teacher.GET("/assignments", c.assignment.List)
		teacher.POST("/assignments", c.assignment.Create)
		teacher.PUT("/assignments/:id", c.assignment.Update)
		teacher.DELETE("/assignments/:id", c.assignment.Delete)
	}
}

func (a *App) registerAdminRoutes(group *gin.RouterGroup, c *controllers) {
	admin := group.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/motivations", c.motivation.GetAllTemplates)
		admin.GET("/motivations/:state", c.motivation.GetTemplate)
		admin.PUT("/motivations/:state", c.motivation.UpdateTemplate)
	}
}
