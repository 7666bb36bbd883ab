package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"peakform/training-studio/internal/domain"
	"peakform/training-studio/internal/form"
	"peakform/training-studio/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Fakes ---

type fakeContactService struct {
	lastName string
	err      error
}

func (f *fakeContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastName = name
	return &domain.ContactMessage{Reference: "ref-123", Name: name, Email: email, Message: message}, nil
}

type fakeSessionService struct {
	user     *domain.User
	sessions []domain.Session

	deletedDrafts []form.Draft
	fetchErr      error
}

func (f *fakeSessionService) FetchSession(ctx context.Context, id string) (*domain.Session, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return &f.sessions[0], nil
}

func (f *fakeSessionService) CreateSession(ctx context.Context, draft form.Draft) (*domain.Session, error) {
	date, err := form.ParseDraftDate(draft)
	if err != nil {
		return nil, service.ErrInvalidDate
	}
	return &domain.Session{
		ID:      primitive.NewObjectID(),
		OwnerID: primitive.NewObjectID(),
		Date:    date,
		Name:    draft.Name,
	}, nil
}

func (f *fakeSessionService) UpdateSession(ctx context.Context, draft form.Draft) (*domain.Session, error) {
	return nil, service.ErrSessionNotFound
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, draft form.Draft) error {
	f.deletedDrafts = append(f.deletedDrafts, draft)
	return nil
}

func (f *fakeSessionService) GetUserWithSessions(ctx context.Context, slug string) (*domain.User, []domain.Session, error) {
	if f.user == nil {
		return nil, nil, service.ErrClientNotFound
	}
	return f.user, f.sessions, nil
}

func (f *fakeSessionService) ListClients(ctx context.Context) ([]domain.User, error) {
	if f.user == nil {
		return []domain.User{}, nil
	}
	return []domain.User{*f.user}, nil
}

func (f *fakeSessionService) AddClientByEmail(ctx context.Context, trainerID primitive.ObjectID, clientEmail string) (*domain.User, error) {
	if f.user == nil || f.user.Email != clientEmail {
		return nil, service.ErrClientNotFound
	}
	linked := *f.user
	linked.TrainerID = &trainerID
	return &linked, nil
}

func (f *fakeSessionService) GenerateVideoUploadURL(ctx context.Context, filename, contentType string) (string, string, error) {
	return "https://bucket.example/presigned", "videos/key.mp4", nil
}

func (f *fakeSessionService) GenerateVideoDownloadURL(ctx context.Context, sessionID string) (string, error) {
	if len(f.sessions) == 0 || f.sessions[0].VideoURL == "" {
		return "", service.ErrNoVideo
	}
	return "https://bucket.example/get/" + f.sessions[0].VideoURL, nil
}

// --- Contact ---

func TestSubmitContactForm(t *testing.T) {
	svc := &fakeContactService{}
	router := gin.New()
	router.POST("/contact", NewContactHandler(svc).SubmitContactForm)

	body := `{"name":"John Doe","email":"john@example.com","message":"Do you train beginners?"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ref-123", resp.Reference)
	assert.Equal(t, "John Doe", svc.lastName)
}

func TestSubmitContactFormRejectsBadEmail(t *testing.T) {
	router := gin.New()
	router.POST("/contact", NewContactHandler(&fakeContactService{}).SubmitContactForm)

	body := `{"name":"John","email":"not-an-email","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Sessions ---

func TestCreateSessionReturnsDateOnlyString(t *testing.T) {
	router := gin.New()
	router.POST("/sessions", NewSessionHandler(&fakeSessionService{}).CreateSession)

	body := `{"ownerId":"652f8deadbeef00012345678","date":"2024-03-10","name":"Leg day"}`
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-03-10", resp.Date)
	assert.Equal(t, "Leg day", resp.Name)
}

func TestDeleteSessionCarriesDeleteMarker(t *testing.T) {
	svc := &fakeSessionService{}
	router := gin.New()
	router.DELETE("/sessions/:id", NewSessionHandler(svc).DeleteSession)

	req := httptest.NewRequest(http.MethodDelete, "/sessions/abc123", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, svc.deletedDrafts, 1)
	assert.True(t, svc.deletedDrafts[0].Delete)
	assert.Equal(t, "abc123", svc.deletedDrafts[0].SessionID)
}

func TestGetSessionNotFound(t *testing.T) {
	svc := &fakeSessionService{fetchErr: service.ErrSessionNotFound}
	router := gin.New()
	router.GET("/sessions/:id", NewSessionHandler(svc).GetSession)

	req := httptest.NewRequest(http.MethodGet, "/sessions/gone", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVideoDownloadURL(t *testing.T) {
	svc := &fakeSessionService{
		sessions: []domain.Session{{ID: primitive.NewObjectID(), VideoURL: "videos/abc.mp4"}},
	}
	router := gin.New()
	router.GET("/sessions/:id/video-download-url", NewSessionHandler(svc).GetVideoDownloadURL)

	req := httptest.NewRequest(http.MethodGet, "/sessions/abc123/video-download-url", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp VideoDownloadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://bucket.example/get/videos/abc.mp4", resp.DownloadURL)
}

func TestGetVideoDownloadURLNoVideo(t *testing.T) {
	router := gin.New()
	router.GET("/sessions/:id/video-download-url", NewSessionHandler(&fakeSessionService{}).GetVideoDownloadURL)

	req := httptest.NewRequest(http.MethodGet, "/sessions/abc123/video-download-url", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Studio ---

func asTrainer(trainerID primitive.ObjectID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserIDKey, trainerID.Hex())
		c.Set(ContextUserRoleKey, domain.RoleTrainer)
		c.Next()
	}
}

func TestAddClientLinksToAuthenticatedTrainer(t *testing.T) {
	trainerID := primitive.NewObjectID()
	svc := &fakeSessionService{
		user: &domain.User{ID: primitive.NewObjectID(), Email: "jane@example.com", Role: domain.RoleClient},
	}
	router := gin.New()
	router.POST("/studio/clients", asTrainer(trainerID), NewStudioHandler(svc).AddClient)

	req := httptest.NewRequest(http.MethodPost, "/studio/clients", strings.NewReader(`{"email":"jane@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.TrainerID)
	assert.Equal(t, trainerID.Hex(), *resp.TrainerID)
}

func TestAddClientUnknownEmail(t *testing.T) {
	router := gin.New()
	router.POST("/studio/clients", asTrainer(primitive.NewObjectID()), NewStudioHandler(&fakeSessionService{}).AddClient)

	req := httptest.NewRequest(http.MethodPost, "/studio/clients", strings.NewReader(`{"email":"nobody@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetClientCalendarPlacesSessionsOnDays(t *testing.T) {
	svc := &fakeSessionService{
		user: &domain.User{ID: primitive.NewObjectID(), FirstName: "Jane", Slug: "jane-doe", Role: domain.RoleClient},
		sessions: []domain.Session{
			{ID: primitive.NewObjectID(), OwnerID: primitive.NewObjectID(), Name: "Leg day", Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
		},
	}
	router := gin.New()
	router.GET("/studio/clients/:slug/calendar", NewStudioHandler(svc).GetClientCalendar)

	// month=1 is February.
	req := httptest.NewRequest(http.MethodGet, "/studio/clients/jane-doe/calendar?month=1&year=2024", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ClientCalendarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Month)
	assert.Equal(t, 2024, resp.Year)
	require.Len(t, resp.Days, 29, "2024 is a leap year")
	assert.Equal(t, "Thursday", resp.Days[0].Label)

	day10 := resp.Days[9]
	require.Len(t, day10.Sessions, 1)
	assert.Equal(t, "Leg day", day10.Sessions[0].Name)
	for i, d := range resp.Days {
		if i != 9 {
			assert.Empty(t, d.Sessions)
		}
	}
}

func TestGetClientCalendarRejectsBadMonth(t *testing.T) {
	router := gin.New()
	router.GET("/studio/clients/:slug/calendar", NewStudioHandler(&fakeSessionService{}).GetClientCalendar)

	req := httptest.NewRequest(http.MethodGet, "/studio/clients/jane-doe/calendar?month=12&year=2024", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetClientSessionsSortsByQueryParam(t *testing.T) {
	svc := &fakeSessionService{
		user: &domain.User{ID: primitive.NewObjectID(), FirstName: "Jane", Slug: "jane-doe", Role: domain.RoleClient},
		sessions: []domain.Session{
			{ID: primitive.NewObjectID(), OwnerID: primitive.NewObjectID(), Name: "zumba", Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
			{ID: primitive.NewObjectID(), OwnerID: primitive.NewObjectID(), Name: "aerobics", Date: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)},
		},
	}
	router := gin.New()
	router.GET("/studio/clients/:slug/sessions", NewStudioHandler(svc).GetClientSessions)

	req := httptest.NewRequest(http.MethodGet, "/studio/clients/jane-doe/sessions?sort=name", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ClientSessionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "name", resp.SortedBy)
	require.Len(t, resp.Sessions, 2)
	assert.Equal(t, "aerobics", resp.Sessions[0].Name)
	assert.Equal(t, "Jane", resp.User.FirstName)
}

func TestGetClientSessionsUnknownClient(t *testing.T) {
	router := gin.New()
	router.GET("/studio/clients/:slug/sessions", NewStudioHandler(&fakeSessionService{}).GetClientSessions)

	req := httptest.NewRequest(http.MethodGet, "/studio/clients/nobody/sessions", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
