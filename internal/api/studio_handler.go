package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"peakform/training-studio/internal/calendar"
	"peakform/training-studio/internal/service"
	"peakform/training-studio/internal/studio"
)

// StudioHandler serves the training-studio views: the client dropdown and
// the per-client session table.
type StudioHandler struct {
	sessionService service.SessionService
}

// NewStudioHandler creates a new StudioHandler.
func NewStudioHandler(sessionService service.SessionService) *StudioHandler {
	return &StudioHandler{sessionService: sessionService}
}

type ClientSessionsResponse struct {
	User     UserResponse      `json:"user"`
	Sessions []SessionResponse `json:"sessions"`
	SortedBy string            `json:"sortedBy"`
}

type AddClientRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CalendarDayResponse is one cell of the month grid, with the client's
// sessions that fall on it.
type CalendarDayResponse struct {
	Day        int               `json:"day"`
	WeekDay    int               `json:"weekDay"`
	Month      int               `json:"month"`
	Year       int               `json:"year"`
	Label      string            `json:"label"`
	ShortLabel string            `json:"shortLabel"`
	IsToday    bool              `json:"isToday"`
	IsTomorrow bool              `json:"isTomorrow"`
	Sessions   []SessionResponse `json:"sessions"`
}

type ClientCalendarResponse struct {
	User  UserResponse          `json:"user"`
	Month int                   `json:"month"`
	Year  int                   `json:"year"`
	Days  []CalendarDayResponse `json:"days"`
}

// ListClients godoc
// @Summary List the studio's clients
// @Description Returns every client for the studio dropdown.
// @Tags Studio
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Router /studio/clients [get]
func (h *StudioHandler) ListClients(c *gin.Context) {
	clients, err := h.sessionService.ListClients(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve clients.")
		return
	}

	resp := make([]UserResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, MapUserToResponse(&clients[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// AddClient godoc
// @Summary Add a client to the studio roster
// @Description Links an existing client account to the authenticated trainer by email.
// @Tags Studio
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param client body AddClientRequest true "Client email"
// @Success 200 {object} UserResponse
// @Failure 404 {object} gin.H "Client not found"
// @Failure 409 {object} gin.H "Client already assigned or not a client account"
// @Router /studio/clients [post]
func (h *StudioHandler) AddClient(c *gin.Context) {
	var req AddClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainerIDStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify trainer from token.")
		return
	}
	trainerID, err := primitive.ObjectIDFromHex(trainerIDStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format in token.")
		return
	}

	client, err := h.sessionService.AddClientByEmail(c.Request.Context(), trainerID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrOwnerNotClient), errors.Is(err, service.ErrClientAlreadyAssigned):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to add client.")
		}
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(client))
}

// GetClientCalendar godoc
// @Summary Get a client's month grid
// @Description Returns the full month grid with the client's sessions placed on their days. Defaults to the current month.
// @Tags Studio
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Client slug"
// @Param month query int false "Month, 0-11"
// @Param year query int false "Four-digit year"
// @Success 200 {object} ClientCalendarResponse
// @Failure 404 {object} gin.H "Client not found"
// @Router /studio/clients/{slug}/calendar [get]
func (h *StudioHandler) GetClientCalendar(c *gin.Context) {
	now := time.Now().UTC()

	month := int(now.Month()) - 1
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 11 {
			abortWithError(c, http.StatusBadRequest, "month must be an integer between 0 and 11")
			return
		}
		month = parsed
	}

	year := now.Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			abortWithError(c, http.StatusBadRequest, "year must be a positive integer")
			return
		}
		year = parsed
	}

	user, sessions, err := h.sessionService.GetUserWithSessions(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve client calendar.")
		}
		return
	}

	grid := calendar.GenerateMonth(month, year)
	days := make([]CalendarDayResponse, 0, len(grid))
	for _, day := range grid {
		onDay := calendar.SessionsOnDay(sessions, day)
		cell := CalendarDayResponse{
			Day:        day.Day,
			WeekDay:    day.WeekDay,
			Month:      day.Month,
			Year:       day.Year,
			Label:      calendar.LongWeekday(day),
			ShortLabel: calendar.ShortWeekday(day),
			IsToday:    calendar.IsToday(day, now),
			IsTomorrow: calendar.IsTomorrow(day, now),
			Sessions:   make([]SessionResponse, 0, len(onDay)),
		}
		for i := range onDay {
			cell.Sessions = append(cell.Sessions, MapSessionToResponse(&onDay[i]))
		}
		days = append(days, cell)
	}

	c.JSON(http.StatusOK, ClientCalendarResponse{
		User:  MapUserToResponse(user),
		Month: month,
		Year:  year,
		Days:  days,
	})
}

// GetClientSessions godoc
// @Summary Get a client's session table
// @Description Returns the client record plus their sessions sorted by the requested column (default date).
// @Tags Studio
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Client slug"
// @Param sort query string false "Sort column: date, name, description, videoUrl, id"
// @Success 200 {object} ClientSessionsResponse
// @Failure 404 {object} gin.H "Client not found"
// @Router /studio/clients/{slug}/sessions [get]
func (h *StudioHandler) GetClientSessions(c *gin.Context) {
	table := studio.NewTableData(h.sessionService, c.Param("slug"))
	table.SetSortKey(calendar.ParseSortKey(c.Query("sort")))

	if err := table.Load(c.Request.Context()); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve client sessions.")
		}
		return
	}

	sessions := table.Sessions()
	resp := ClientSessionsResponse{
		User:     MapUserToResponse(table.User()),
		Sessions: make([]SessionResponse, 0, len(sessions)),
		SortedBy: string(table.SortKey()),
	}
	for i := range sessions {
		resp.Sessions = append(resp.Sessions, MapSessionToResponse(&sessions[i]))
	}

	c.JSON(http.StatusOK, resp)
}
