package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vietthanh-tce/feedback-backend/controllers"
	"github.com/vietthanh-tce/feedback-backend/middleware"
	"github.com/vietthanh-tce/feedback-backend/store"
	"github.com/vietthanh-tce/feedback-backend/utils"
)

func SetupRouter(r *gin.Engine, ctl *controllers.Controller, jwtUtil *utils.JWTUtil, st store.UserStore) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", ctl.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ctl.Login)
	}

	user := api.Group("/user")
	{
		user.Use(middleware.AuthMiddleware(jwtUtil, st))
		user.GET("/me", ctl.Me)
		user.GET("/feedbacks", ctl.GetMyFeedbacks)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(jwtUtil, st), middleware.RequireRoles("admin"))

		// Import roster từ Google Sheets hoặc file Excel upload
		admin.POST("/import", ctl.ImportFromSheet)
		admin.POST("/import/file", ctl.ImportFromFile)

		// Thống kê dashboard
		admin.GET("/stats", ctl.GetStats)
	}

	return r
}
