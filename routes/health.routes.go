package routes

import (
	"techblog/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterHealthRoutes(router *gin.Engine, healthController *controllers.HealthController) {
	router.GET("/health", healthController.Health)
	// Kept for clients probing the older path
	router.GET("/api/health", healthController.Health)
}
