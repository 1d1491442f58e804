package routes

import (
	"os"

	"techblog/internal/controllers"
	"techblog/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController) {
	articleRoutesPublic := router.Group("/api/articles")
	{
		articleRoutesPublic.GET("", articleController.GetAllArticles)
		articleRoutesPublic.GET("/:id", articleController.GetArticleByID)
	}

	articleRoutesAdmin := router.Group("/api/articles")
	// Mutations require a session token once a signing secret is configured;
	// without one the API runs open (dev mode).
	if os.Getenv("JWT_SECRET_KEY") != "" {
		articleRoutesAdmin.Use(middleware.AuthMiddleware())
	}
	{
		articleRoutesAdmin.POST("", articleController.CreateArticle)
		articleRoutesAdmin.PUT("/:id", articleController.UpdateArticle)
		articleRoutesAdmin.DELETE("/:id", articleController.DeleteArticle)
	}
}
