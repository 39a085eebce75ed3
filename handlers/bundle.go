package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	RegisterHandler  gin.HandlerFunc
	LoginHandler     gin.HandlerFunc
	LineLoginHandler gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	GetStatsHandler      gin.HandlerFunc
	PointsHistoryHandler gin.HandlerFunc

	// Catalogue endpoints
	ListServicesHandler  gin.HandlerFunc
	GetServiceHandler    gin.HandlerFunc
	CategoriesHandler    gin.HandlerFunc
	ListStaffHandler     gin.HandlerFunc
	GetStaffHandler      gin.HandlerFunc
	StaffServicesHandler gin.HandlerFunc

	// Booking endpoints
	AvailableSlotsHandler gin.HandlerFunc
	CreateBookingHandler  gin.HandlerFunc
	ListBookingsHandler   gin.HandlerFunc
	GetBookingHandler     gin.HandlerFunc
	CancelBookingHandler  gin.HandlerFunc

	// Payment endpoints
	CreatePaymentHandler gin.HandlerFunc
	ListPaymentsHandler  gin.HandlerFunc
	GetPaymentHandler    gin.HandlerFunc

	// Admin endpoints
	AdminDashboardHandler     gin.HandlerFunc
	AdminRevenueHandler       gin.HandlerFunc
	AdminListUsersHandler     gin.HandlerFunc
	AdminGetUserHandler       gin.HandlerFunc
	AdminSetUserActiveHandler gin.HandlerFunc
	AdminListBookingsHandler  gin.HandlerFunc
	AdminSetBookingHandler    gin.HandlerFunc
	AdminCreateServiceHandler gin.HandlerFunc
	AdminUpdateServiceHandler gin.HandlerFunc
	AdminDeleteServiceHandler gin.HandlerFunc

	// LINE webhook
	LineWebhookHandler gin.HandlerFunc
}
