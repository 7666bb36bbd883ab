package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peakform/training-studio/internal/service"
)

// ContentHandler serves content-managed pieces of the marketing site.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// GetNavbar godoc
// @Summary Get the site navbar
// @Description Returns the content-managed navbar links and site name.
// @Tags Content
// @Produce json
// @Success 200 {object} domain.SiteContent
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /content/navbar [get]
func (h *ContentHandler) GetNavbar(c *gin.Context) {
	content, err := h.contentService.Navbar(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve site content.")
		return
	}
	c.JSON(http.StatusOK, content)
}
