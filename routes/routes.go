package routes

import (
	"net/http"
	"time"

	userRepo "campushub/database/repository/user"
	"campushub/handlers"
	"campushub/middleware"
	"campushub/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers and the repositories the middleware
// needs, so route registration stays declarative.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth         *handlers.AuthHandler
	Timetable    *handlers.TimetableHandler
	Announcement *handlers.AnnouncementHandler
	AI           *handlers.AIHandler
}

// RegisterAuthRoutes registers login and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/logout", hb.Auth.LogoutHandler)
		protected.GET("/me", hb.Auth.MeHandler)
	}
}

// RegisterTimetableRoutes registers the timetable store endpoints.
func RegisterTimetableRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/timetables")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		// Students fetch their own class timetable from their profile.
		api.GET("/my-timetable", hb.Timetable.MyTimetableHandler)
		api.GET("/class/:branch/:section", hb.Timetable.GetByClassHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.POST("/class/manual", hb.Timetable.CreateManualHandler)
		admin.GET("", hb.Timetable.ListHandler)
		admin.GET("/:id/export", hb.Timetable.ExportCSVHandler)
		admin.DELETE("/:id", hb.Timetable.DeleteHandler)
	}
}

// RegisterAnnouncementRoutes registers announcement endpoints. Reads are
// public; writes need an admin or teacher token.
func RegisterAnnouncementRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/announcements")
	{
		api.GET("", hb.Announcement.ListHandler)

		staff := api.Group("")
		staff.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		staff.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
		staff.GET("/all", hb.Announcement.ListAllHandler)
		staff.POST("", hb.Announcement.CreateHandler)
		staff.PUT("/:id", hb.Announcement.UpdateHandler)
		staff.DELETE("/:id", hb.Announcement.DeleteHandler)
	}
}

// RegisterAIRoutes registers the drafting assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher))
		api.POST("/draft-announcement", hb.AI.DraftAnnouncementHandler)
		api.POST("/draft-description", hb.AI.DraftDescriptionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "CampusHub is up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterTimetableRoutes(r, hb)
	RegisterAnnouncementRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r)
}
