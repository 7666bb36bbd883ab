package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"peakform/training-studio/internal/domain"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetBySlug(ctx context.Context, slug string) (*domain.User, error)
	ListClients(ctx context.Context) ([]domain.User, error)
	AddClientIDToTrainer(ctx context.Context, trainerID, clientID primitive.ObjectID) error
	SetTrainerForClient(ctx context.Context, clientID, trainerID primitive.ObjectID) error
}

// SessionRepository defines the interface for interacting with training
// session data. Delete is always soft: the record is retained with its
// deleted flag set, and reads of a client's sessions filter flagged
// records out.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Session, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
}

// ContactRepository stores contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (primitive.ObjectID, error)
}

// ContentRepository serves the content-managed pieces of the site.
type ContentRepository interface {
	Get(ctx context.Context) (*domain.SiteContent, error)
	Seed(ctx context.Context, content *domain.SiteContent) error
}
