package routes

import (
	"serenemind/handlers"
	"serenemind/middleware"
	"serenemind/services/user"

	"github.com/gin-gonic/gin"
)

// Handlers bundles all route handlers for registration.
type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Therapist  *handlers.TherapistHandler
	Scheduling *handlers.SchedulingHandler
	Journal    *handlers.JournalHandler
	Mood       *handlers.MoodHandler
	Assessment *handlers.AssessmentHandler
	SelfCare   *handlers.SelfCareHandler
}

// RegisterRoutes registers all endpoints.
func RegisterRoutes(r *gin.Engine, h *Handlers, userSvc user.UserService) {
	r.GET("/health", handlers.Health)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	// Everything below requires a valid token.
	api := r.Group("/api")
	api.Use(middleware.JWTAuthUserMiddleware(userSvc))
	{
		users := api.Group("/users")
		{
			users.GET("/me", h.User.GetProfile)
			users.PUT("/me", h.User.UpdateProfile)
			users.POST("/me/signout", h.User.SignOut)
			users.DELETE("/me", h.User.DeleteAccount)
		}

		therapists := api.Group("/therapists")
		{
			therapists.GET("", h.Therapist.List)
			therapists.GET("/:therapistID", h.Therapist.Get)
			therapists.POST("", h.Therapist.Create)
		}

		booking := api.Group("/appointments")
		{
			booking.GET("/availability", h.Scheduling.GetAvailability)
			booking.POST("", h.Scheduling.Book)
			booking.GET("", h.Scheduling.List)
			booking.POST("/:appointmentID/cancel", h.Scheduling.Cancel)
		}

		journal := api.Group("/journal")
		{
			journal.POST("", h.Journal.Create)
			journal.POST("/attachments", h.Journal.Upload)
			journal.GET("", h.Journal.List)
			journal.GET("/:entryID", h.Journal.Get)
			journal.DELETE("/:entryID", h.Journal.Delete)
		}

		moods := api.Group("/moods")
		{
			moods.POST("", h.Mood.Log)
			moods.GET("", h.Mood.Range)
			moods.GET("/summary", h.Mood.WeeklySummary)
		}

		assessments := api.Group("/assessments")
		{
			assessments.POST("", h.Assessment.Submit)
			assessments.GET("", h.Assessment.List)
		}

		selfcare := api.Group("/selfcare")
		{
			selfcare.GET("/columns", h.SelfCare.Columns)
			selfcare.POST("/recommend", h.SelfCare.Recommend)
		}
	}
}
