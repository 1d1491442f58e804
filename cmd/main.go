package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"techblog/database"
	"techblog/docs"
	"techblog/internal/cache"
	"techblog/internal/controllers"
	"techblog/internal/middleware"
	"techblog/internal/repository"
	"techblog/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Large cap so inline base64 images fit in a create/update body.
const maxRequestBody = 200 << 20 // 200MB

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Tech Insights Blog API"
	docs.SwaggerInfo.Description = "REST API for the AI & Tech Insights blog."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to MongoDB (fatal when MONGODB_URI is missing or unreachable)
	database.ConnectDatabase()
	defer database.Disconnect()
	database.MonitorDBConnections()

	// Optional Redis read cache
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, running without cache: %v", err)
		redisClient = nil
	}

	var articleRepo repository.ArticleRepository
	if redisClient != nil {
		articleRepo = repository.NewCachedArticleRepository(database.DB, redisClient)
		log.Println("Initialized cached article repository")
	} else {
		articleRepo = repository.NewArticleRepository(database.DB)
		log.Println("Initialized article repository")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := articleRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("Warning: failed to ensure indexes: %v", err)
	}
	cancel()

	// Initialize controllers
	articleController := controllers.NewArticleController(articleRepo)
	healthController := controllers.NewHealthController(database.IsConnected)
	authController := controllers.NewAuthController()

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
		})
	}))

	router.Use(secure.New(secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data: https:",
	}))

	router.Use(cors.New(corsConfig()))
	router.Use(middleware.BodySizeLimit(maxRequestBody))

	routes.RegisterHealthRoutes(router, healthController)
	routes.RegisterArticleRoutes(router, articleController)
	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterSwaggerRoutes(router)
	routes.RegisterDebugRoutes(router, redisClient)
	routes.RegisterWebRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)
	log.Printf("Health Check: http://localhost:%s/health", port)
	log.Printf("Runtime Stats: http://localhost:%s/debug/stats", port)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func corsConfig() cors.Config {
	origins := os.Getenv("CLIENT_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000,http://localhost:5000"
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = strings.Split(origins, ",")
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	cfg.AllowCredentials = true
	return cfg
}
