// File: campuscare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campuscare/config"
	"campuscare/cron"
	"campuscare/database"
	bookingRepoPkg "campuscare/database/repository/booking"
	chatRepoPkg "campuscare/database/repository/chat"
	contactRepoPkg "campuscare/database/repository/contact"
	feedbackRepoPkg "campuscare/database/repository/feedback"
	resourceRepoPkg "campuscare/database/repository/resource"
	userRepoPkg "campuscare/database/repository/user"
	"campuscare/handlers"
	"campuscare/middleware"
	"campuscare/routes"
	"campuscare/services/booking"
	"campuscare/services/chat"
	"campuscare/services/contact"
	"campuscare/services/feedback"
	"campuscare/services/notification"
	"campuscare/services/resources"
	"campuscare/services/user"
	"campuscare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()
	resourceRepo := resourceRepoPkg.NewMongoResourceRepo()

	if err := bookingRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Warnf("main: failed to ensure booking indexes: %v", err)
	}

	// Services.
	notificationService, err := notification.NewDefaultNotificationService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	reminderScheduler := cron.NewReminderScheduler()

	availability := booking.NewRandomAvailability(0.8, time.Now().UnixNano())
	wizardService := booking.NewDefaultWizardService(bookingRepo, availability, notificationService, reminderScheduler)
	userService := user.NewDefaultUserService(userRepo, bookingRepo)
	contactService := contact.NewDefaultContactService(contactRepo)
	chatService := chat.NewDefaultChatService(chatRepo)
	feedbackService := feedback.NewDefaultFeedbackService(feedbackRepo)
	resourceService := resources.NewDefaultResourceService(resourceRepo)

	// Background reminder worker.
	cron.InitReminderWorker(notificationService)

	// Router and middleware.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		Booking:   handlers.NewBookingHandler(wizardService, logger),
		Catalog:   handlers.NewCatalogHandler(wizardService.Catalog),
		Contact:   handlers.NewContactHandler(contactService),
		Chat:      handlers.NewChatHandler(chatService),
		Feedback:  handlers.NewFeedbackHandler(feedbackService),
		Resources: handlers.NewResourceHandler(resourceService),
		User:      handlers.NewUserHandler(userService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}
	logger.Info("Server stopped")
}
