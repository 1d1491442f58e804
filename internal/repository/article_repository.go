package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"techblog/internal/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	articleCacheKeyPrefix = "article:"
	allArticlesCacheKey   = "articles:all"
	cacheExpiration       = 30 * time.Minute

	// Per-query time budget against the store.
	queryTimeout = 30 * time.Second
)

type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	FindAll(ctx context.Context) ([]models.Article, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Article, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	EnsureIndexes(ctx context.Context) error
	InvalidateCache(id primitive.ObjectID) error
	InvalidateAllCache() error
}

type articleRepository struct {
	collection *mongo.Collection
	redis      *redis.Client
}

func getCacheKey(id primitive.ObjectID) string {
	return articleCacheKeyPrefix + id.Hex()
}

func NewArticleRepository(db *mongo.Database) ArticleRepository {
	return &articleRepository{
		collection: db.Collection("articles"),
		redis:      nil,
	}
}

func NewCachedArticleRepository(db *mongo.Database, redisClient *redis.Client) ArticleRepository {
	return &articleRepository{
		collection: db.Collection("articles"),
		redis:      redisClient,
	}
}

// EnsureIndexes creates the unique slug index. Uniqueness is enforced by
// the store; the API layer resolves collisions by suffixing beforehand.
func (r *articleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create slug index: %w", err)
	}
	return nil
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if article.ID.IsZero() {
		article.ID = primitive.NewObjectID()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}

	if _, err := r.collection.InsertOne(ctx, article); err != nil {
		log.Printf("Error creating article: %v", err)
		return err
	}

	_ = r.InvalidateAllCache()
	return nil
}

func (r *articleRepository) FindAll(ctx context.Context) ([]models.Article, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(ctx, allArticlesCacheKey).Result()
		if err == nil {
			var articles []models.Article
			if err := json.Unmarshal([]byte(cachedData), &articles); err == nil {
				return articles, nil
			}
		}
	}

	// Cache miss (or cache disabled), query the store ordered newest first
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(qctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}

	articles := []models.Article{}
	if err := cursor.All(qctx, &articles); err != nil {
		return nil, err
	}

	if r.redis != nil {
		articlesJSON, err := json.Marshal(articles)
		if err == nil {
			if err := r.redis.Set(ctx, allArticlesCacheKey, articlesJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache article list: %v", err)
			}
		}
	}

	return articles, nil
}

func (r *articleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(ctx, getCacheKey(id)).Result()
		if err == nil {
			var article models.Article
			if err := json.Unmarshal([]byte(cachedData), &article); err == nil {
				return &article, nil
			}
			log.Printf("Failed to unmarshal cached article: %v", err)
		}
	}

	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var article models.Article
	if err := r.collection.FindOne(qctx, bson.M{"_id": id}).Decode(&article); err != nil {
		return nil, err
	}

	if r.redis != nil {
		articleJSON, err := json.Marshal(article)
		if err == nil {
			if err := r.redis.Set(ctx, getCacheKey(id), articleJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache article %s: %v", id.Hex(), err)
			}
		}
	}

	return &article, nil
}

// Update applies a partial $set on the document and returns the updated
// record. Returns mongo.ErrNoDocuments when the id is unknown.
func (r *articleRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Article, error) {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if len(fields) == 0 {
		var article models.Article
		if err := r.collection.FindOne(qctx, bson.M{"_id": id}).Decode(&article); err != nil {
			return nil, err
		}
		return &article, nil
	}

	var article models.Article
	err := r.collection.FindOneAndUpdate(
		qctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&article)
	if err != nil {
		return nil, err
	}

	if r.redis != nil {
		articleJSON, merr := json.Marshal(article)
		if merr == nil {
			if err := r.redis.Set(ctx, getCacheKey(id), articleJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to update article cache: %v", err)
			}
		}
		_ = r.InvalidateAllCache()
	}

	return &article, nil
}

// Delete removes the document. Deleting an absent id is not an error.
func (r *articleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.collection.DeleteOne(qctx, bson.M{"_id": id}); err != nil {
		return err
	}

	_ = r.InvalidateCache(id)
	_ = r.InvalidateAllCache()
	return nil
}

func (r *articleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	qctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(qctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *articleRepository) InvalidateCache(id primitive.ObjectID) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(context.Background(), getCacheKey(id)).Err()
}

func (r *articleRepository) InvalidateAllCache() error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(context.Background(), allArticlesCacheKey).Err()
}
