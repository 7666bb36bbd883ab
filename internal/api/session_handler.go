package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"peakform/training-studio/internal/domain"
	"peakform/training-studio/internal/form"
	"peakform/training-studio/internal/service"
)

// SessionHandler exposes the training-session CRUD endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- DTOs ---

// SessionDraftRequest mirrors the studio form draft.
type SessionDraftRequest struct {
	OwnerID     string `json:"ownerId" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	// Either an external link or the object key returned by the upload presign.
	VideoURL string `json:"videoUrl"`
}

type SessionResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Date        string `json:"date"` // YYYY-MM-DD
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	VideoURL    string `json:"videoUrl,omitempty"`
}

type VideoUploadRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type VideoUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

type VideoDownloadResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

// MapSessionToResponse converts a domain session into its API shape.
func MapSessionToResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:          s.ID.Hex(),
		OwnerID:     s.OwnerID.Hex(),
		Date:        s.Date.UTC().Format("2006-01-02"),
		Name:        s.Name,
		Description: s.Description,
		VideoURL:    s.VideoURL,
	}
}

func (h *SessionHandler) abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrOwnerNotFound),
		errors.Is(err, service.ErrNoVideo):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrOwnerRequired),
		errors.Is(err, service.ErrNoDeleteMarker):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrOwnerNotClient):
		abortWithError(c, http.StatusForbidden, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Failed to process session.")
	}
}

// --- Handler Methods ---

// GetSession godoc
// @Summary Fetch a single session
// @Description Retrieves one training session for editing. Soft-deleted sessions read as missing.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} gin.H "Session not found"
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessionService.FetchSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapSessionToResponse(session))
}

// CreateSession godoc
// @Summary Create a training session
// @Description Creates a session for the owning client named in the draft.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draft body SessionDraftRequest true "Session draft"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Owning client not found"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req SessionDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.sessionService.CreateSession(c.Request.Context(), form.Draft{
		OwnerID:     req.OwnerID,
		Date:        req.Date,
		Name:        req.Name,
		Description: req.Description,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MapSessionToResponse(session))
}

// UpdateSession godoc
// @Summary Update a training session
// @Description Rewrites an existing session's editable fields. Ownership never changes.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param draft body SessionDraftRequest true "Session draft"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Session not found"
// @Router /sessions/{id} [put]
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	var req SessionDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.sessionService.UpdateSession(c.Request.Context(), form.Draft{
		SessionID:   c.Param("id"),
		OwnerID:     req.OwnerID,
		Date:        req.Date,
		Name:        req.Name,
		Description: req.Description,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapSessionToResponse(session))
}

// DeleteSession godoc
// @Summary Soft-delete a training session
// @Description Flags the session deleted; the record is retained.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 204 "Deleted"
// @Failure 404 {object} gin.H "Session not found"
// @Router /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	err := h.sessionService.DeleteSession(c.Request.Context(), form.Draft{
		SessionID: c.Param("id"),
		Delete:    true,
	})
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateVideoUploadURL godoc
// @Summary Presign a session video upload
// @Description Returns a temporary PUT URL the trainer uploads a demonstration video to.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VideoUploadRequest true "Upload details"
// @Success 200 {object} VideoUploadResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /sessions/video-upload-url [post]
func (h *SessionHandler) CreateVideoUploadURL(c *gin.Context) {
	var req VideoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	uploadURL, objectKey, err := h.sessionService.GenerateVideoUploadURL(c.Request.Context(), req.Filename, req.ContentType)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL.")
		return
	}

	c.JSON(http.StatusOK, VideoUploadResponse{UploadURL: uploadURL, ObjectKey: objectKey})
}

// GetVideoDownloadURL godoc
// @Summary Resolve a session's video to a fetchable URL
// @Description Returns a temporary GET URL for an uploaded video, or the external link as-is.
// @Tags Sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} VideoDownloadResponse
// @Failure 404 {object} gin.H "Session or video not found"
// @Router /sessions/{id}/video-download-url [get]
func (h *SessionHandler) GetVideoDownloadURL(c *gin.Context) {
	downloadURL, err := h.sessionService.GenerateVideoDownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, VideoDownloadResponse{DownloadURL: downloadURL})
}
