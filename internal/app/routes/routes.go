package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillmap/skillmap/internal/app/controllers"
	"github.com/skillmap/skillmap/internal/app/models/dto"
	"github.com/skillmap/skillmap/internal/middleware"
	"github.com/skillmap/skillmap/internal/pkg/metrics"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth    *controllers.AuthController
	Profile *controllers.ProfileController
	Course  *controllers.CourseController
	Admin   *controllers.AdminController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter *middleware.LoginRateLimiter,
	m *metrics.Metrics,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewOKResponse())
	})
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := router.Group("/api")

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		credentials := auth.Group("")
		if loginLimiter != nil {
			credentials.Use(loginLimiter.Middleware())
		}
		credentials.POST("/login", ctrl.Auth.Login)
		credentials.POST("/register", ctrl.Auth.Register)
	}

	api.GET("/majors", ctrl.Course.ListMajors)
	api.GET("/courses", ctrl.Course.ListCourses)

	// --- Authenticated routes, any role ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.GET("/auth/me", ctrl.Profile.GetProfile)
		authenticated.PUT("/auth/me", ctrl.Profile.UpdateProfile)
		authenticated.GET("/courses/skills", ctrl.Course.SkillsForCourses)
	}

	// --- Administrator routes ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
	{
		admin.GET("/courses", ctrl.Admin.ListCourses)
		admin.GET("/courses/:courseId/mapping", ctrl.Admin.GetMapping)
		admin.PUT("/courses/:courseId/mapping", ctrl.Admin.ReplaceMapping)
		admin.GET("/skills-options", ctrl.Admin.SkillsOptions)
		admin.POST("/skills", ctrl.Admin.CreateSkill)
		admin.DELETE("/skills/:skillId", ctrl.Admin.DeleteSkill)
	}
}
