package routes

import (
	"time"

	"shramic/handlers"
	"shramic/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVerificationRoutes registers the phone verification wizard
// endpoints.
func RegisterVerificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/verification")
	{
		api.POST("/start", hb.Verification.StartHandler)
		api.POST("/request", hb.Verification.RequestCodeHandler)
		api.POST("/confirm", hb.Verification.ConfirmCodeHandler)
		api.POST("/resend", hb.Verification.ResendCodeHandler)
		api.POST("/reset", hb.Verification.ResetHandler)
		api.GET("/status/:sessionId", hb.Verification.StatusHandler)
		api.DELETE("/:sessionId", hb.Verification.CloseHandler)
	}
}

// RegisterEquipmentRoutes registers the public browse endpoints and the
// owner-only submission and status endpoints.
func RegisterEquipmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/equipments")
	{
		api.GET("", hb.Equipment.ListHandler)
		api.GET("/:id", hb.Equipment.GetHandler)

		protected := api.Group("")
		protected.Use(middleware.OwnerAuthMiddleware())
		protected.POST("", hb.Equipment.SubmitHandler)
		protected.PATCH("/:id/status", hb.Equipment.UpdateStatusHandler)
	}
}

// RegisterDashboardRoutes registers the owner dashboard endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.OwnerAuthMiddleware())
		api.GET("/overview", hb.Dashboard.OverviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterVerificationRoutes(r, hb)
	RegisterEquipmentRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}
