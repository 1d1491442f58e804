package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"techblog/internal/controllers"
	"techblog/internal/models"
	"techblog/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Test helper functions
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

func setupControllerWithMock() (*controllers.ArticleController, *mocks.MockArticleRepository) {
	mockRepo := new(mocks.MockArticleRepository)
	controller := controllers.NewArticleController(mockRepo)
	return controller, mockRepo
}

func assignStoreFields(article *models.Article) {
	if article.ID.IsZero() {
		article.ID = primitive.NewObjectID()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}
}

func TestNewArticleController(t *testing.T) {
	mockRepo := new(mocks.MockArticleRepository)
	controller := controllers.NewArticleController(mockRepo)

	assert.NotNil(t, controller)
}

func TestCreateArticle(t *testing.T) {
	validContent := strings.Repeat("x", 60)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMock      func(*mocks.MockArticleRepository)
		expectedStatus int
		checkBody      func(*testing.T, map[string]interface{})
	}{
		{
			name: "successful creation with derived slug",
			requestBody: map[string]interface{}{
				"title":   "Hello World",
				"content": validContent,
			},
			setupMock: func(m *mocks.MockArticleRepository) {
				m.On("SlugExists", mock.Anything, "hello-world").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*models.Article")).
					Run(func(args mock.Arguments) {
						assignStoreFields(args.Get(1).(*models.Article))
					}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Hello World", body["title"])
				assert.Equal(t, validContent, body["content"])
				assert.Equal(t, "hello-world", body["slug"])
				assert.NotEmpty(t, body["id"])

				createdAt, err := time.Parse(time.RFC3339, body["createdAt"].(string))
				assert.NoError(t, err)
				assert.False(t, createdAt.After(time.Now().UTC().Add(time.Second)))
			},
		},
		{
			name: "slug collision resolved by suffixing",
			requestBody: map[string]interface{}{
				"title":   "Hello World",
				"content": validContent,
			},
			setupMock: func(m *mocks.MockArticleRepository) {
				m.On("SlugExists", mock.Anything, "hello-world").Return(true, nil)
				m.On("SlugExists", mock.Anything, "hello-world-2").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*models.Article")).
					Run(func(args mock.Arguments) {
						assignStoreFields(args.Get(1).(*models.Article))
					}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "hello-world-2", body["slug"])
			},
		},
		{
			name:           "missing title and content lists both fields",
			requestBody:    map[string]interface{}{},
			setupMock:      func(m *mocks.MockArticleRepository) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				errs := body["errors"].([]interface{})
				assert.Len(t, errs, 2)
				assert.Contains(t, errs, "title is required")
				assert.Contains(t, errs, "content is required")
			},
		},
		{
			name: "title below minimum length",
			requestBody: map[string]interface{}{
				"title":   "Hi",
				"content": validContent,
			},
			setupMock:      func(m *mocks.MockArticleRepository) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				errs := body["errors"].([]interface{})
				assert.Len(t, errs, 1)
				assert.Contains(t, errs[0].(string), "at least 5")
			},
		},
		{
			name: "title with disallowed characters",
			requestBody: map[string]interface{}{
				"title":   "Hello <script>",
				"content": validContent,
			},
			setupMock:      func(m *mocks.MockArticleRepository) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				errs := body["errors"].([]interface{})
				assert.Contains(t, errs[0].(string), "may only contain")
			},
		},
		{
			name: "malformed image reference",
			requestBody: map[string]interface{}{
				"title":   "Hello World",
				"content": validContent,
				"image":   "not-a-url",
			},
			setupMock:      func(m *mocks.MockArticleRepository) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				errs := body["errors"].([]interface{})
				assert.Contains(t, errs[0].(string), "valid URL or data URI")
			},
		},
		{
			name: "client-supplied id and createdAt are ignored",
			requestBody: map[string]interface{}{
				"title":     "Hello World",
				"content":   validContent,
				"id":        "507f1f77bcf86cd799439011",
				"createdAt": "1999-01-01T00:00:00Z",
			},
			setupMock: func(m *mocks.MockArticleRepository) {
				m.On("SlugExists", mock.Anything, "hello-world").Return(false, nil)
				m.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Article) bool {
					return a.ID.IsZero() && a.CreatedAt.IsZero()
				})).Run(func(args mock.Arguments) {
					assignStoreFields(args.Get(1).(*models.Article))
				}).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.NotEqual(t, "507f1f77bcf86cd799439011", body["id"])

				createdAt, err := time.Parse(time.RFC3339, body["createdAt"].(string))
				assert.NoError(t, err)
				assert.Greater(t, createdAt.Year(), 1999)
			},
		},
		{
			name:           "invalid JSON",
			requestBody:    nil,
			setupMock:      func(m *mocks.MockArticleRepository) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Invalid request data", body["message"])
			},
		},
		{
			name: "repository error",
			requestBody: map[string]interface{}{
				"title":   "Hello World",
				"content": validContent,
			},
			setupMock: func(m *mocks.MockArticleRepository) {
				m.On("SlugExists", mock.Anything, "hello-world").Return(false, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*models.Article")).
					Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Failed to create article", body["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.POST("/api/articles", controller.CreateArticle)

			var body []byte
			if tt.requestBody != nil {
				body, _ = json.Marshal(tt.requestBody)
			} else {
				body = []byte("invalid json")
			}

			req := httptest.NewRequest(http.MethodPost, "/api/articles", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			tt.checkBody(t, response)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetAllArticles(t *testing.T) {
	newer := models.Article{
		ID:        primitive.NewObjectID(),
		Title:     "Newer article",
		Content:   strings.Repeat("a", 60),
		Slug:      "newer-article",
		CreatedAt: time.Now().UTC(),
	}
	older := models.Article{
		ID:        primitive.NewObjectID(),
		Title:     "Older article",
		Content:   strings.Repeat("b", 60),
		Slug:      "older-article",
		CreatedAt: time.Now().UTC().Add(-time.Hour),
	}

	t.Run("returns articles newest first", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("FindAll", mock.Anything).Return([]models.Article{newer, older}, nil)

		router := setupTestRouter()
		router.GET("/api/articles", controller.GetAllArticles)

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []models.Article
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response, 2)
		assert.Equal(t, "Newer article", response[0].Title)
		assert.Equal(t, "Older article", response[1].Title)
		assert.True(t, response[0].CreatedAt.After(response[1].CreatedAt))
	})

	t.Run("repository error", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("FindAll", mock.Anything).Return(nil, errors.New("store unreachable"))

		router := setupTestRouter()
		router.GET("/api/articles", controller.GetAllArticles)

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetArticleByID(t *testing.T) {
	article := models.Article{
		ID:        primitive.NewObjectID(),
		Title:     "Hello World",
		Content:   strings.Repeat("x", 60),
		Slug:      "hello-world",
		CreatedAt: time.Now().UTC(),
	}

	tests := []struct {
		name           string
		id             string
		setupMock      func(*mocks.MockArticleRepository)
		expectedStatus int
		checkBody      func(*testing.T, map[string]interface{})
	}{
		{
			name: "found",
			id:   article.ID.Hex(),
			setupMock: func(m *mocks.MockArticleRepository) {
				m.On("FindByID", mock.Anything, article.ID).Return(&article, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Hello World", body["title"])
			},
		},
		{
			name: "unknown but well-formed id",
			id:   primitive.NewObjectID().Hex(),
			setupMock: func(m *mocks.MockArticleRepository) {
				m.On("FindByID", mock.Anything, mock.AnythingOfType("primitive.ObjectID")).
					Return(nil, mongo.ErrNoDocuments)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Article not found", body["message"])
			},
		},
		{
			name:           "malformed id is a bad request, never a server error",
			id:             "not-a-valid-id",
			setupMock:      func(m *mocks.MockArticleRepository) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Invalid article ID", body["message"])
				assert.Equal(t, "24-character hexadecimal string", body["expectedFormat"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupTestRouter()
			router.GET("/api/articles/:id", controller.GetArticleByID)

			req := httptest.NewRequest(http.MethodGet, "/api/articles/"+tt.id, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			tt.checkBody(t, response)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateArticle(t *testing.T) {
	id := primitive.NewObjectID()
	updated := models.Article{
		ID:        id,
		Title:     "Updated title",
		Content:   strings.Repeat("y", 60),
		Slug:      "hello-world",
		CreatedAt: time.Now().UTC(),
	}

	t.Run("partial update passes through provided fields only", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("Update", mock.Anything, id, mock.MatchedBy(func(fields map[string]interface{}) bool {
			title, hasTitle := fields["title"]
			_, hasContent := fields["content"]
			return hasTitle && !hasContent && title == "Updated title"
		})).Return(&updated, nil)

		router := setupTestRouter()
		router.PUT("/api/articles/:id", controller.UpdateArticle)

		body, _ := json.Marshal(map[string]interface{}{"title": "  Updated title  "})
		req := httptest.NewRequest(http.MethodPut, "/api/articles/"+id.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.Article
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Updated title", response.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("immutable fields are stripped", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("Update", mock.Anything, id, mock.MatchedBy(func(fields map[string]interface{}) bool {
			_, hasID := fields["_id"]
			_, hasCreatedAt := fields["createdAt"]
			return !hasID && !hasCreatedAt
		})).Return(&updated, nil)

		router := setupTestRouter()
		router.PUT("/api/articles/:id", controller.UpdateArticle)

		body, _ := json.Marshal(map[string]interface{}{
			"title":     "Updated title",
			"createdAt": "1999-01-01T00:00:00Z",
			"_id":       primitive.NewObjectID().Hex(),
		})
		req := httptest.NewRequest(http.MethodPut, "/api/articles/"+id.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("primitive.ObjectID"), mock.Anything).
			Return(nil, mongo.ErrNoDocuments)

		router := setupTestRouter()
		router.PUT("/api/articles/:id", controller.UpdateArticle)

		body, _ := json.Marshal(map[string]interface{}{"title": "Updated title"})
		req := httptest.NewRequest(http.MethodPut, "/api/articles/"+primitive.NewObjectID().Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		controller, _ := setupControllerWithMock()

		router := setupTestRouter()
		router.PUT("/api/articles/:id", controller.UpdateArticle)

		body, _ := json.Marshal(map[string]interface{}{"title": "Updated title"})
		req := httptest.NewRequest(http.MethodPut, "/api/articles/nope", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("strict validation rejects short content", func(t *testing.T) {
		t.Setenv("STRICT_UPDATE_VALIDATION", "true")

		controller, _ := setupControllerWithMock()

		router := setupTestRouter()
		router.PUT("/api/articles/:id", controller.UpdateArticle)

		body, _ := json.Marshal(map[string]interface{}{"content": "too short"})
		req := httptest.NewRequest(http.MethodPut, "/api/articles/"+id.Hex(), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		errs := response["errors"].([]interface{})
		assert.Contains(t, errs[0].(string), "at least 50")
	})
}

func TestDeleteArticle(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("delete is idempotent", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("Delete", mock.Anything, id).Return(nil).Twice()

		router := setupTestRouter()
		router.DELETE("/api/articles/:id", controller.DeleteArticle)

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodDelete, "/api/articles/"+id.Hex(), nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, "Article deleted successfully", response["message"])
		}

		mockRepo.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		controller, _ := setupControllerWithMock()

		router := setupTestRouter()
		router.DELETE("/api/articles/:id", controller.DeleteArticle)

		req := httptest.NewRequest(http.MethodDelete, "/api/articles/nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("repository error", func(t *testing.T) {
		controller, mockRepo := setupControllerWithMock()
		mockRepo.On("Delete", mock.Anything, id).Return(errors.New("store unreachable"))

		router := setupTestRouter()
		router.DELETE("/api/articles/:id", controller.DeleteArticle)

		req := httptest.NewRequest(http.MethodDelete, "/api/articles/"+id.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
