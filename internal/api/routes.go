package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peakform/training-studio/internal/domain"
	"peakform/training-studio/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	sessionService service.SessionService,
	contactService service.ContactService,
	contentService service.ContentService,
) {
	authHandler := NewAuthHandler(authService)
	sessionHandler := NewSessionHandler(sessionService)
	studioHandler := NewStudioHandler(sessionService)
	contactHandler := NewContactHandler(contactService)
	contentHandler := NewContentHandler(contentService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.Use(MetricsMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", MetricsHandler())

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Public marketing endpoints.
		apiV1.GET("/content/navbar", contentHandler.GetNavbar)
		apiV1.POST("/contact", contactHandler.SubmitContactForm)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- Session Routes ---
		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.GET("/:id", sessionHandler.GetSession)
			sessionGroup.GET("/:id/video-download-url", sessionHandler.GetVideoDownloadURL)

			// Mutations are trainer-only; clients read their calendar,
			// the trainer curates it.
			sessionGroup.POST("", RoleMiddleware(domain.RoleTrainer), sessionHandler.CreateSession)
			sessionGroup.PUT("/:id", RoleMiddleware(domain.RoleTrainer), sessionHandler.UpdateSession)
			sessionGroup.DELETE("/:id", RoleMiddleware(domain.RoleTrainer), sessionHandler.DeleteSession)
			sessionGroup.POST("/video-upload-url", RoleMiddleware(domain.RoleTrainer), sessionHandler.CreateVideoUploadURL)
		}

		// --- Studio Routes ---
		studioGroup := protected.Group("/studio")
		studioGroup.Use(RoleMiddleware(domain.RoleTrainer))
		{
			// GET /api/v1/studio/clients
			studioGroup.GET("/clients", studioHandler.ListClients)
			// POST /api/v1/studio/clients
			studioGroup.POST("/clients", studioHandler.AddClient)
			// GET /api/v1/studio/clients/{slug}/sessions?sort=name
			studioGroup.GET("/clients/:slug/sessions", studioHandler.GetClientSessions)
			// GET /api/v1/studio/clients/{slug}/calendar?month=2&year=2024
			studioGroup.GET("/clients/:slug/calendar", studioHandler.GetClientCalendar)
		}
	}
}
