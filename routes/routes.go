package routes

import (
	"time"

	"darimaids/handlers"
	"darimaids/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterWizardRoutes sets up the booking wizard endpoints. Sessions
// are anonymous; the session ID is the capability.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wizard := r.Group("/api/wizard")
	{
		wizard.GET("/options", hb.GetWizardOptions)
		wizard.POST("/session", hb.InitiateSession)
		wizard.GET("/session/:sessionID", hb.GetSession)
		wizard.PATCH("/session/:sessionID/field", hb.UpdateField)
		wizard.PUT("/session/:sessionID/addons", hb.ToggleAddon)
		wizard.PUT("/session/:sessionID/contact", hb.SetContact)
		wizard.POST("/session/:sessionID/reset", hb.ResetSession)
		wizard.POST("/session/:sessionID/submit", hb.SubmitBooking)
		wizard.DELETE("/session/:sessionID", hb.CancelSession)
		wizard.GET("/checkout/:checkoutSessionID", hb.CheckoutStatus)
	}
}

// RegisterBookingRoutes registers catalog and booking lookups.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/catalog", hb.ListCatalog)

	bookings := r.Group("/api/bookings")
	{
		bookings.GET("", hb.ListBookings)
		bookings.GET("/pending", hb.ListPendingBookings)
		bookings.GET("/:bookingID", hb.GetBooking)
		bookings.DELETE("/:bookingID", hb.DeleteBooking)
	}
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupCustomer)
		api.POST("/worker-signup", hb.SignupWorker)
		api.POST("/login", hb.Login)
		api.POST("/verify-email", hb.VerifyEmail)

		// Protected routes (Require Authentication)
		api.GET("/profile", middleware.BearerAuth(hb.JWTSecret), hb.Profile)
	}
}

// RegisterWorkerRoutes registers the worker portal and bank endpoints.
func RegisterWorkerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := []gin.HandlerFunc{middleware.BearerAuth(hb.JWTSecret), middleware.RequireRole("cleaner", "worker")}

	bank := r.Group("/api/bank", auth...)
	{
		bank.GET("", hb.GetBank)
		bank.POST("", hb.CreateBank)
		bank.PUT("", hb.UpdateBank)
		bank.DELETE("", hb.DeleteBank)
	}

	worker := r.Group("/api/worker", auth...)
	{
		worker.GET("/assignments", hb.ListAssignments)
		worker.GET("/assignments/:bookingID", hb.GetAssignment)
		worker.PATCH("/assignments/:bookingID/respond", hb.RespondToAssignment)
		worker.PATCH("/assignments/:bookingID/complete", hb.CompleteAssignment)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, allowedOrigins []string) {
	corsConfig := cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	RegisterHealthRoute(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterWorkerRoutes(r, hb)
}
