package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"yungwing/handlers"
	"yungwing/middleware"
)

// RegisterAuthRoutes registers registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/line", hb.LineLoginHandler)
	}
}

// RegisterUserRoutes registers the member profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.GET("/me/stats", hb.GetStatsHandler)
		api.GET("/me/points", hb.PointsHistoryHandler)
	}
}

// RegisterCatalogRoutes registers the service catalogue and staff
// endpoints. Listings are public so prospects can browse before
// registering.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	services := r.Group("/api/services")
	{
		services.GET("", hb.ListServicesHandler)
		services.GET("/categories", hb.CategoriesHandler)
		services.GET("/:id", hb.GetServiceHandler)
	}
	staff := r.Group("/api/staff")
	{
		staff.GET("", hb.ListStaffHandler)
		staff.GET("/:id", hb.GetStaffHandler)
		staff.GET("/:id/services", hb.StaffServicesHandler)
	}
}

// RegisterBookingRoutes sets up the appointment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/available-slots", hb.AvailableSlotsHandler)
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterPaymentRoutes sets up the payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("", hb.CreatePaymentHandler)
		api.GET("", hb.ListPaymentsHandler)
		api.GET("/:id", hb.GetPaymentHandler)
	}
}

// RegisterAdminRoutes sets up the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthUserMiddleware(), middleware.JWTAuthAdminMiddleware())
		api.GET("/dashboard", hb.AdminDashboardHandler)
		api.GET("/revenue", hb.AdminRevenueHandler)
		api.GET("/users", hb.AdminListUsersHandler)
		api.GET("/users/:id", hb.AdminGetUserHandler)
		api.PUT("/users/:id/active", hb.AdminSetUserActiveHandler)
		api.GET("/bookings", hb.AdminListBookingsHandler)
		api.PUT("/bookings/:id/status", hb.AdminSetBookingHandler)
		api.POST("/services", hb.AdminCreateServiceHandler)
		api.PUT("/services/:id", hb.AdminUpdateServiceHandler)
		api.DELETE("/services/:id", hb.AdminDeleteServiceHandler)
	}
}

// RegisterLineRoutes sets up the LINE webhook endpoint. Authentication
// is the channel signature, not a JWT.
func RegisterLineRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/line/webhook", hb.LineWebhookHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and
// middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterLineRoutes(r, hb)
}
