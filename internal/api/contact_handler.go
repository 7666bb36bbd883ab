package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"peakform/training-studio/internal/service"
)

// ContactHandler receives public contact-form submissions.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type ContactResponse struct {
	Reference string `json:"reference"`
}

// SubmitContactForm godoc
// @Summary Submit the contact form
// @Description Stores the message and notifies the studio inbox.
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body ContactRequest true "Contact message"
// @Success 201 {object} ContactResponse "Accepted, reference returned"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /contact [post]
func (h *ContactHandler) SubmitContactForm(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrContactFieldsRequired) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to submit contact form.")
		}
		return
	}

	c.JSON(http.StatusCreated, ContactResponse{Reference: msg.Reference})
}
