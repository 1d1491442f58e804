package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"techblog/internal/models"
	"techblog/internal/repository"
	"techblog/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const objectIDHint = "24-character hexadecimal string"

type ArticleController struct {
	repo repository.ArticleRepository
}

func NewArticleController(repo repository.ArticleRepository) *ArticleController {
	return &ArticleController{repo: repo}
}

// CreateArticle godoc
// @Summary Create a new article
// @Description Create an article with the provided data. Validation failures list every invalid field.
// @Tags articles
// @Accept json
// @Produce json
// @Param article body models.Article true "Article data"
// @Success 201 {object} models.Article "Created article"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Failed to create article"
// @Router /api/articles [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var article models.Article

	if err := c.ShouldBindJSON(&article); err != nil {
		if isBodyTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"status":  "error",
				"message": "Request payload is too large",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// id and createdAt are assigned by the store, never taken from the client
	article.ID = primitive.NilObjectID
	article.CreatedAt = time.Time{}

	article.Title = strings.TrimSpace(article.Title)

	if msgs := article.ValidateForCreate(); len(msgs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  msgs,
		})
		return
	}

	base := article.Slug
	if base == "" {
		base = article.Title
	}
	slug, err := ac.uniqueSlug(c, utils.Slugify(base))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create article",
			"error":   err.Error(),
		})
		return
	}
	article.Slug = slug

	if err := ac.repo.Create(c.Request.Context(), &article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, article)
}

// GetAllArticles godoc
// @Summary List all articles
// @Description Retrieve all articles ordered by creation time, newest first
// @Tags articles
// @Produce json
// @Success 200 {array} models.Article
// @Failure 500 {object} map[string]interface{} "Failed to retrieve articles"
// @Router /api/articles [get]
func (ac *ArticleController) GetAllArticles(c *gin.Context) {
	articles, err := ac.repo.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, articles)
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Description Retrieve a single article
// @Tags articles
// @Produce json
// @Param id path string true "Article ID (ObjectID hex)"
// @Success 200 {object} models.Article
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /api/articles/{id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	id, ok := ac.parseID(c)
	if !ok {
		return
	}

	article, err := ac.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Article not found",
				"error":   "No article exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, article)
}

// UpdateArticle godoc
// @Summary Update an article
// @Description Apply a partial or full update to an article. Field validation on update is gated by STRICT_UPDATE_VALIDATION.
// @Tags articles
// @Accept json
// @Produce json
// @Param id path string true "Article ID (ObjectID hex)"
// @Param article body models.Article true "Fields to update"
// @Success 200 {object} models.Article "Updated article"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Failure 500 {object} map[string]interface{} "Failed to update article"
// @Router /api/articles/{id} [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	id, ok := ac.parseID(c)
	if !ok {
		return
	}

	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		if isBodyTooLarge(err) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"status":  "error",
				"message": "Request payload is too large",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if strictUpdateValidation() {
		if msgs := models.ValidateUpdateFields(input); len(msgs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Validation failed",
				"errors":  msgs,
			})
			return
		}
	}

	// id and createdAt are immutable; everything else passes through
	fields := bson.M{}
	for _, key := range []string{"title", "content", "image", "slug"} {
		if value, present := input[key]; present {
			fields[key] = value
		}
	}
	if title, ok := fields["title"].(string); ok {
		fields["title"] = strings.TrimSpace(title)
	}
	if slug, ok := fields["slug"].(string); ok {
		fields["slug"] = utils.Slugify(slug)
	}

	article, err := ac.repo.Update(c.Request.Context(), id, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Article not found",
				"error":   "No article exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary Delete an article
// @Description Remove an article. Deleting an already absent article succeeds.
// @Tags articles
// @Produce json
// @Param id path string true "Article ID (ObjectID hex)"
// @Success 200 {object} map[string]interface{} "Confirmation message"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete article"
// @Router /api/articles/{id} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	id, ok := ac.parseID(c)
	if !ok {
		return
	}

	if err := ac.repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Article deleted successfully",
	})
}

func (ac *ArticleController) parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":         "error",
			"message":        "Invalid article ID",
			"error":          err.Error(),
			"expectedFormat": objectIDHint,
		})
		return primitive.NilObjectID, false
	}
	return id, true
}

// uniqueSlug resolves a store-level slug collision by numeric suffixing.
func (ac *ArticleController) uniqueSlug(c *gin.Context, slug string) (string, error) {
	if slug == "" {
		slug = "untitled"
	}

	candidate := slug
	for i := 2; ; i++ {
		exists, err := ac.repo.SlugExists(c.Request.Context(), candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
}

func strictUpdateValidation() bool {
	return os.Getenv("STRICT_UPDATE_VALIDATION") == "true"
}

func isBodyTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
