package routes

import (
	"net/http"
	"time"

	"meishimail/handlers"
	"meishimail/middleware"
	"meishimail/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers wizard session lifecycle endpoints.
// Creation is the only endpoint that works without a session header.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wizard")
	{
		api.POST("/session", hb.CreateSessionHandler)

		scoped := api.Group("")
		scoped.Use(middleware.SessionMiddleware())
		scoped.GET("/session", hb.GetSessionHandler)
		scoped.DELETE("/session", hb.DeleteSessionHandler)
	}
}

// RegisterCardRoutes registers capture and review endpoints for both cards.
func RegisterCardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cards")
	{
		api.Use(middleware.SessionMiddleware())
		api.POST("/:owner/capture/start", hb.StartCaptureHandler)
		api.POST("/:owner/capture", hb.CaptureHandler)
		api.PUT("/:owner", hb.EditCardHandler)
	}
}

// RegisterMeetingRoutes registers the meeting metadata endpoint.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meeting")
	{
		api.Use(middleware.SessionMiddleware())
		api.PUT("", hb.SetMeetingHandler)
	}
}

// RegisterEmailRoutes registers draft generation, editing and handoff.
func RegisterEmailRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/email")
	{
		api.Use(middleware.SessionMiddleware())
		api.POST("/generate", hb.GenerateEmailHandler)
		api.PUT("", hb.UpdateDraftHandler)
		api.POST("/send", hb.SendEmailHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", utils.SessionIDHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSessionRoutes(r, hb)
	RegisterCardRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterEmailRoutes(r, hb)
	RegisterHealthRoute(r)
}
