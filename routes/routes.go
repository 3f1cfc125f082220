package routes

import (
	"net/http"
	"time"

	"campuscare/handlers"
	"campuscare/middleware"
	"campuscare/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.Register)
		api.POST("/login", hb.User.Login)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo, false))
		api.POST("/logout", hb.User.Logout)
		api.GET("/me", hb.User.GetProfile)
		api.PATCH("/me", hb.User.UpdateProfile)
		api.GET("/me/bookings", hb.User.MyBookings)
		api.DELETE("/me/bookings/:bookingID", hb.User.CancelBooking)
		api.GET("/me/resources", hb.Resources.ListSaved)
	}
}

// RegisterBookingRoutes sets up the booking wizard endpoints. The wizard is
// open to guests; a valid token attaches the booking to the account.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo, true))
		api.POST("/session", hb.Booking.StartSession)
		api.GET("/session/:sessionID", hb.Booking.GetSession)
		api.DELETE("/session/:sessionID", hb.Booking.CancelSession)

		api.PUT("/session/:sessionID/service", hb.Booking.SelectService)
		api.PUT("/session/:sessionID/counselor", hb.Booking.SelectCounselor)
		api.PUT("/session/:sessionID/date", hb.Booking.SelectDate)
		api.PUT("/session/:sessionID/time", hb.Booking.SelectTime)

		api.POST("/session/:sessionID/next", hb.Booking.GoNext)
		api.POST("/session/:sessionID/prev", hb.Booking.GoPrev)

		api.GET("/session/:sessionID/calendar", hb.Booking.Calendar)
		api.GET("/session/:sessionID/slots", hb.Booking.TimeSlots)
		api.GET("/session/:sessionID/summary", hb.Booking.Summary)
		api.POST("/session/:sessionID/confirm", hb.Booking.Confirm)
	}
}

// RegisterCatalogRoutes registers the public service and counselor catalogs.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.Catalog.ListServices)
		api.GET("/counselors", hb.Catalog.ListCounselors)
	}
}

// RegisterContactRoutes registers the contact form endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/contact")
	{
		api.POST("", middleware.JWTAuthUserMiddleware(hb.UserRepo, true), hb.Contact.Submit)
		api.GET("", middleware.JWTAuthUserMiddleware(hb.UserRepo, false), hb.Contact.ListRecent)
	}
}

// RegisterChatRoutes registers the support chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo, true))
		api.GET("/status", hb.Chat.Status)
		api.POST("/message", hb.Chat.SendMessage)
		api.GET("/history/:conversationID", hb.Chat.History)
	}
}

// RegisterFeedbackRoutes registers the feedback board endpoints.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feedback")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo, true))
		api.POST("", hb.Feedback.Submit)
		api.GET("", hb.Feedback.ListRecent)
	}
}

// RegisterResourceRoutes registers the wellness resource library endpoints.
func RegisterResourceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/resources")
	{
		api.GET("", hb.Resources.List)
		api.GET("/:key", hb.Resources.Get)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo, false))
		protected.POST("/:key/start", hb.Resources.TrackStart)
		protected.POST("/:key/save", hb.Resources.Save)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterResourceRoutes(r, hb)
	RegisterHealthRoute(r)
}
