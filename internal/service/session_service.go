package service

import (
	"context"
	"errors"
	"log"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"peakform/training-studio/internal/domain"
	"peakform/training-studio/internal/form"
	"peakform/training-studio/internal/repository"
	"peakform/training-studio/internal/storage"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrOwnerNotFound         = errors.New("owning client not found")
	ErrOwnerNotClient        = errors.New("session owner must be a client")
	ErrOwnerRequired         = errors.New("session requires an owning client")
	ErrNameRequired          = errors.New("session requires a name")
	ErrInvalidID             = errors.New("invalid object id")
	ErrInvalidDate           = errors.New("session date must be YYYY-MM-DD")
	ErrNoDeleteMarker        = errors.New("delete dispatched without delete marker")
	ErrClientNotFound        = errors.New("client not found")
	ErrClientAlreadyAssigned = errors.New("client is already assigned to a trainer")
	ErrNoVideo               = errors.New("session has no video")
)

// SessionService is the persistence collaborator for training sessions.
// It satisfies form.SessionAPI and studio.API, so the pure form controller
// and table view model plug straight into it.
type SessionService interface {
	FetchSession(ctx context.Context, id string) (*domain.Session, error)
	CreateSession(ctx context.Context, draft form.Draft) (*domain.Session, error)
	UpdateSession(ctx context.Context, draft form.Draft) (*domain.Session, error)
	DeleteSession(ctx context.Context, draft form.Draft) error

	GetUserWithSessions(ctx context.Context, slug string) (*domain.User, []domain.Session, error)
	ListClients(ctx context.Context) ([]domain.User, error)
	AddClientByEmail(ctx context.Context, trainerID primitive.ObjectID, clientEmail string) (*domain.User, error)

	// GenerateVideoUploadURL returns a presigned PUT URL for a session
	// demonstration video plus the object key to store on the session.
	GenerateVideoUploadURL(ctx context.Context, filename, contentType string) (uploadURL, objectKey string, err error)
	GenerateVideoDownloadURL(ctx context.Context, sessionID string) (string, error)
}

// sessionService implements the SessionService interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	fileStorage storage.FileStorage,
) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

// FetchSession retrieves one session for editing. Soft-deleted sessions
// behave as if they no longer exist.
func (s *sessionService) FetchSession(ctx context.Context, id string) (*domain.Session, error) {
	sessionID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.Deleted {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// CreateSession persists a new session from the form draft.
func (s *sessionService) CreateSession(ctx context.Context, draft form.Draft) (*domain.Session, error) {
	session, err := s.sessionFromDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	sessionID, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = sessionID
	return session, nil
}

// UpdateSession rewrites an existing session's editable fields from the
// draft. Ownership is taken from the stored record, never the draft.
func (s *sessionService) UpdateSession(ctx context.Context, draft form.Draft) (*domain.Session, error) {
	existing, err := s.FetchSession(ctx, draft.SessionID)
	if err != nil {
		return nil, err
	}

	date, err := form.ParseDraftDate(draft)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if draft.Name == "" {
		return nil, ErrNameRequired
	}

	previousVideo := existing.VideoURL

	existing.Date = date
	existing.Name = draft.Name
	existing.Description = draft.Description
	existing.VideoURL = draft.VideoURL

	if err := s.sessionRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	// The old upload is unreachable once the video changes; clean it up.
	if previousVideo != draft.VideoURL && isObjectKey(previousVideo) {
		if err := s.fileStorage.DeleteObject(ctx, previousVideo); err != nil {
			log.Printf("WARN: Failed to delete replaced session video %s: %v", previousVideo, err)
		}
	}
	return existing, nil
}

// DeleteSession soft-deletes the draft's session. The draft must carry the
// delete marker; a bare update payload never deletes anything.
func (s *sessionService) DeleteSession(ctx context.Context, draft form.Draft) error {
	if !draft.Delete {
		return ErrNoDeleteMarker
	}

	sessionID, err := primitive.ObjectIDFromHex(draft.SessionID)
	if err != nil {
		return ErrInvalidID
	}

	if err := s.sessionRepo.SoftDelete(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

// GetUserWithSessions returns the client identified by slug together with
// their live sessions, in one logical round trip.
func (s *sessionService) GetUserWithSessions(ctx context.Context, slug string) (*domain.User, []domain.Session, error) {
	user, err := s.userRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrClientNotFound
		}
		return nil, nil, err
	}

	sessions, err := s.sessionRepo.GetByOwnerID(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	user.PasswordHash = ""
	return user, sessions, nil
}

// ListClients returns every client for the studio dropdown.
func (s *sessionService) ListClients(ctx context.Context) ([]domain.User, error) {
	clients, err := s.userRepo.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		clients[i].PasswordHash = ""
	}
	return clients, nil
}

// AddClientByEmail links an existing client account to the trainer: the
// client's ID joins the trainer's roster and the client's TrainerID points
// back. Linking to a second trainer is rejected; re-adding an already
// linked client is a no-op.
func (s *sessionService) AddClientByEmail(ctx context.Context, trainerID primitive.ObjectID, clientEmail string) (*domain.User, error) {
	if trainerID == primitive.NilObjectID || clientEmail == "" {
		return nil, errors.New("trainer ID and client email are required")
	}

	client, err := s.userRepo.GetByEmail(ctx, clientEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if !client.IsClient() {
		return nil, ErrOwnerNotClient
	}

	if client.TrainerID != nil && *client.TrainerID != primitive.NilObjectID {
		if *client.TrainerID == trainerID {
			client.PasswordHash = ""
			return client, nil
		}
		return nil, ErrClientAlreadyAssigned
	}

	if err := s.userRepo.AddClientIDToTrainer(ctx, trainerID, client.ID); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetTrainerForClient(ctx, client.ID, trainerID); err != nil {
		return nil, err
	}

	client.TrainerID = &trainerID
	client.PasswordHash = ""
	return client, nil
}

// GenerateVideoUploadURL presigns a PUT for a session video. The object
// key is namespaced under videos/ with a fresh UUID so uploads never
// collide; the original extension is kept for content sniffing.
func (s *sessionService) GenerateVideoUploadURL(ctx context.Context, filename, contentType string) (string, string, error) {
	objectKey := "videos/" + uuid.New().String() + path.Ext(filename)

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", "", err
	}
	return uploadURL, objectKey, nil
}

// GenerateVideoDownloadURL resolves a session's video to a fetchable URL.
// Uploaded videos are stored as object keys and get a presigned GET;
// externally hosted links pasted into the form pass through unchanged.
func (s *sessionService) GenerateVideoDownloadURL(ctx context.Context, sessionID string) (string, error) {
	session, err := s.FetchSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session.VideoURL == "" {
		return "", ErrNoVideo
	}
	if !isObjectKey(session.VideoURL) {
		return session.VideoURL, nil
	}
	return s.fileStorage.GeneratePresignedDownloadURL(ctx, session.VideoURL, storage.DefaultPresignedURLExpiry)
}

// isObjectKey reports whether a session video value is a stored object key
// rather than an external link.
func isObjectKey(videoURL string) bool {
	return videoURL != "" && !strings.Contains(videoURL, "://")
}

// sessionFromDraft validates a create-mode draft and builds the domain
// session, verifying the owner exists and holds the client role.
func (s *sessionService) sessionFromDraft(ctx context.Context, draft form.Draft) (*domain.Session, error) {
	if draft.OwnerID == "" {
		return nil, ErrOwnerRequired
	}
	if draft.Name == "" {
		return nil, ErrNameRequired
	}

	ownerID, err := primitive.ObjectIDFromHex(draft.OwnerID)
	if err != nil {
		return nil, ErrInvalidID
	}

	date, err := form.ParseDraftDate(draft)
	if err != nil {
		return nil, ErrInvalidDate
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	if !owner.IsClient() {
		return nil, ErrOwnerNotClient
	}

	return &domain.Session{
		OwnerID:     ownerID,
		Date:        date,
		Name:        draft.Name,
		Description: draft.Description,
		VideoURL:    draft.VideoURL,
	}, nil
}
