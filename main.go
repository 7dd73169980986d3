// File: calmora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calmora/config"
	"calmora/cron"
	"calmora/database"
	bookingRepoPkg "calmora/database/repository/booking"
	messageRepoPkg "calmora/database/repository/message"
	therapistRepoPkg "calmora/database/repository/therapist"
	userRepoPkg "calmora/database/repository/user"
	"calmora/handlers"
	"calmora/middleware"
	"calmora/routes"
	"calmora/services/booking"
	"calmora/services/message"
	"calmora/services/notification"
	"calmora/services/tasks"
	"calmora/services/therapist"
	"calmora/services/user"
	"calmora/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitLedgerCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	therapistRepo := therapistRepoPkg.NewMongoTherapistRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	messageRepo := messageRepoPkg.NewMongoMessageRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	userHandler := handlers.NewUserHandler(userService)

	therapistService := &therapist.DefaultTherapistService{
		Repo:     therapistRepo,
		Bookings: bookingRepo,
		Users:    userRepo,
	}
	therapistHandler := handlers.NewTherapistHandler(therapistService)

	notificationService, err := notification.NewDefaultNotificationService(userRepo, therapistRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitReminderWorker(notificationService)

	slotLedger := booking.NewRedisLedger(utils.GetLedgerCacheClient(), logger)
	paymentHandler := booking.NewStripePaymentHandler(logger)
	bookingService := &booking.DefaultBookingService{
		Ledger:     slotLedger,
		Payments:   paymentHandler,
		Repo:       bookingRepo,
		Therapists: therapistRepo,
		Users:      userRepo,
		Reminders:  tasks.NewAsynqReminderScheduler(),
		Currency:   config.AppConfig.Currency,
	}
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	messageService := &message.DefaultMessageService{
		Repo: messageRepo,
	}
	messageHandler := handlers.NewMessageHandler(messageService)

	adminHandler := handlers.NewAdminHandler(userService, therapistService, bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:      userRepo,
		TherapistRepo: therapistRepo,

		// Patient endpoints.
		RegisterUserHandler:        userHandler.RegisterUserHandler,
		AuthenticateUserHandler:    userHandler.AuthenticateUserHandler,
		GetUserByIDHandler:         userHandler.GetUserByIDHandler,
		UpdateUserHandler:          userHandler.UpdateUserHandler,
		UpdateUserPasswordHandler:  userHandler.UpdateUserPasswordHandler,
		DeleteUserHandler:          userHandler.DeleteUserHandler,
		RevokeUserAuthTokenHandler: userHandler.RevokeUserAuthTokenHandler,

		// Therapist endpoints.
		RegisterTherapistHandler:        therapistHandler.RegisterTherapistHandler,
		AuthenticateTherapistHandler:    therapistHandler.AuthenticateTherapistHandler,
		SearchTherapistsHandler:         therapistHandler.SearchTherapistsHandler,
		GetTherapistProfileHandler:      therapistHandler.GetTherapistProfileHandler,
		UpdateTherapistHandler:          therapistHandler.UpdateTherapistHandler,
		DeleteTherapistHandler:          therapistHandler.DeleteTherapistHandler,
		RevokeTherapistAuthTokenHandler: therapistHandler.RevokeTherapistAuthTokenHandler,
		GetPatientRosterHandler:         therapistHandler.GetPatientRosterHandler,
		GetTherapistScheduleHandler:     therapistHandler.GetScheduleHandler,

		// Booking endpoints.
		GetAvailableSlots:     bookingHandler.GetAvailableSlots,
		ConfirmBooking:        bookingHandler.ConfirmBooking,
		ListMyBookings:        bookingHandler.ListMyBookings,
		ListTherapistBookings: bookingHandler.ListTherapistBookings,
		CancelBooking:         bookingHandler.CancelBooking,

		// Messaging endpoints.
		SendPatientMessageHandler:       messageHandler.SendPatientMessageHandler,
		SendTherapistMessageHandler:     messageHandler.SendTherapistMessageHandler,
		GetPatientConversationHandler:   messageHandler.GetPatientConversationHandler,
		GetTherapistConversationHandler: messageHandler.GetTherapistConversationHandler,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Keep a health snapshot of the backing services.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetLedgerCacheClient()},
		database.MongoClient,
	)

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
