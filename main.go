package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"yungwing/config"
	"yungwing/cron"
	"yungwing/database"
	bookingRepoPkg "yungwing/database/repository/booking"
	catalogRepoPkg "yungwing/database/repository/catalog"
	paymentRepoPkg "yungwing/database/repository/payment"
	userRepoPkg "yungwing/database/repository/user"
	"yungwing/handlers"
	"yungwing/routes"
	adminSvc "yungwing/services/admin"
	bookingSvc "yungwing/services/booking"
	catalogSvc "yungwing/services/catalog"
	lineSvc "yungwing/services/line"
	paymentSvc "yungwing/services/payment"
	userSvc "yungwing/services/user"
	"yungwing/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	// background worker and reminder scheduler.
	lineClient := lineSvc.NewClient()
	cron.InitWorker(bookingRepo, userRepo, lineClient)
	reminderScheduler := cron.NewScheduler()

	// services.
	bookingService := bookingSvc.NewDefaultBookingService(bookingRepo, catalogRepo, reminderScheduler, utils.GetCacheClient())
	userService := userSvc.NewDefaultUserService(userRepo, bookingRepo, paymentRepo)
	catalogService := catalogSvc.NewDefaultCatalogService(catalogRepo, bookingRepo)
	paymentService := paymentSvc.NewDefaultPaymentService(paymentRepo, bookingRepo, userRepo)
	adminService := adminSvc.NewDefaultAdminService(userRepo, bookingRepo, paymentRepo)
	lineService := lineSvc.NewDefaultLineService(lineClient, userRepo, catalogRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Auth endpoints.
		RegisterHandler:  handlers.RegisterHandler(userService),
		LoginHandler:     handlers.LoginHandler(userService),
		LineLoginHandler: handlers.LineLoginHandler(userService),

		// Profile endpoints.
		GetProfileHandler:    handlers.GetProfileHandler(userService),
		UpdateProfileHandler: handlers.UpdateProfileHandler(userService),
		GetStatsHandler:      handlers.GetStatsHandler(userService),
		PointsHistoryHandler: handlers.PointsHistoryHandler(userService),

		// Catalogue endpoints.
		ListServicesHandler:  handlers.ListServicesHandler(catalogService),
		GetServiceHandler:    handlers.GetServiceHandler(catalogService),
		CategoriesHandler:    handlers.CategoriesHandler(catalogService),
		ListStaffHandler:     handlers.ListStaffHandler(catalogService),
		GetStaffHandler:      handlers.GetStaffHandler(catalogService),
		StaffServicesHandler: handlers.StaffServicesHandler(catalogService),

		// Booking endpoints.
		AvailableSlotsHandler: handlers.AvailableSlotsHandler(bookingService),
		CreateBookingHandler:  handlers.CreateBookingHandler(bookingService),
		ListBookingsHandler:   handlers.ListBookingsHandler(bookingService),
		GetBookingHandler:     handlers.GetBookingHandler(bookingService),
		CancelBookingHandler:  handlers.CancelBookingHandler(bookingService),

		// Payment endpoints.
		CreatePaymentHandler: handlers.CreatePaymentHandler(paymentService),
		ListPaymentsHandler:  handlers.ListPaymentsHandler(paymentService),
		GetPaymentHandler:    handlers.GetPaymentHandler(paymentService),

		// Admin endpoints.
		AdminDashboardHandler:     handlers.AdminDashboardHandler(adminService),
		AdminRevenueHandler:       handlers.AdminRevenueHandler(adminService),
		AdminListUsersHandler:     handlers.AdminListUsersHandler(adminService),
		AdminGetUserHandler:       handlers.AdminGetUserHandler(adminService),
		AdminSetUserActiveHandler: handlers.AdminSetUserActiveHandler(adminService),
		AdminListBookingsHandler:  handlers.AdminListBookingsHandler(adminService),
		AdminSetBookingHandler:    handlers.AdminSetBookingHandler(adminService),
		AdminCreateServiceHandler: handlers.AdminCreateServiceHandler(catalogService),
		AdminUpdateServiceHandler: handlers.AdminUpdateServiceHandler(catalogService),
		AdminDeleteServiceHandler: handlers.AdminDeleteServiceHandler(catalogService),

		// LINE webhook.
		LineWebhookHandler: handlers.LineWebhookHandler(lineService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
