package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"peakform/training-studio/internal/domain"
	"peakform/training-studio/internal/repository"
)

const contentCollectionName = "site_content"

// The site has exactly one content document, addressed by a fixed key.
const siteContentKey = "default"

// mongoContentRepository implements repository.ContentRepository.
type mongoContentRepository struct {
	collection *mongo.Collection
}

// NewMongoContentRepository creates a new SiteContent repository.
func NewMongoContentRepository(db *mongo.Database) repository.ContentRepository {
	return &mongoContentRepository{
		collection: db.Collection(contentCollectionName),
	}
}

// Get retrieves the site content document.
func (r *mongoContentRepository) Get(ctx context.Context) (*domain.SiteContent, error) {
	var content domain.SiteContent
	filter := bson.M{"key": siteContentKey}

	err := r.collection.FindOne(ctx, filter).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &content, nil
}

// Seed writes the content document only if none exists yet, so operator
// edits in the database are never clobbered on restart.
func (r *mongoContentRepository) Seed(ctx context.Context, content *domain.SiteContent) error {
	content.UpdatedAt = time.Now().UTC()

	filter := bson.M{"key": siteContentKey}
	update := bson.M{
		"$setOnInsert": bson.M{
			"key":       siteContentKey,
			"siteName":  content.SiteName,
			"navbar":    content.Navbar,
			"updatedAt": content.UpdatedAt,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// EnsureContentIndexes creates necessary indexes. Call during startup.
func EnsureContentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
