package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"peakform/training-studio/internal/domain"
	"peakform/training-studio/internal/repository"
)

const contactCollectionName = "contact_messages"

// mongoContactRepository implements repository.ContactRepository.
type mongoContactRepository struct {
	collection *mongo.Collection
}

// NewMongoContactRepository creates a new ContactMessage repository.
func NewMongoContactRepository(db *mongo.Database) repository.ContactRepository {
	return &mongoContactRepository{
		collection: db.Collection(contactCollectionName),
	}
}

// Create stores a contact-form submission.
func (r *mongoContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) (primitive.ObjectID, error) {
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return primitive.NilObjectID, errors.New("contact message requires name, email, and message")
	}

	msg.ID = primitive.NewObjectID()
	msg.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, msg)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted contact message ID")
	}
	return insertedID, nil
}

// EnsureContactIndexes creates necessary indexes. Call during startup.
func EnsureContactIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "reference", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
