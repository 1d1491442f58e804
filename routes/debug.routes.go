package routes

import (
	"runtime"

	"techblog/internal/cache"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterDebugRoutes(router *gin.Engine, redisClient *redis.Client) {
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
			"cache":      cache.Status(redisClient),
		})
	})
}
