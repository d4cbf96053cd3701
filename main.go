// File: homeserve/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeserve/config"
	"homeserve/cron"
	"homeserve/database"
	bookingRepoPkg "homeserve/database/repository/booking"
	serviceRepoPkg "homeserve/database/repository/service"
	userRepoPkg "homeserve/database/repository/user"
	"homeserve/handlers"
	"homeserve/middleware"
	"homeserve/routes"
	"homeserve/services/booking"
	"homeserve/services/notification"
	"homeserve/services/user"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := notification.NewDefaultNotificationService()

	reminderQueue := cron.NewReminderQueue()
	cron.InitReminderWorker(notificationService)

	bookingService := &booking.DefaultBookingService{
		Repo:        bookingRepo,
		UserRepo:    userRepo,
		ServiceRepo: serviceRepo,
		Notifier:    notificationService,
		Reminders:   reminderQueue,
		Cache:       utils.GetCacheClient(),
		TaxRate:     config.AppConfig.TaxRate,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Users:    handlers.NewUserHandler(userService),
		Services: handlers.NewServiceHandler(serviceRepo),
		Bookings: handlers.NewBookingHandler(bookingService, logger),
		Admin:    handlers.NewAdminHandler(userService, bookingService, serviceRepo),
		Storage:  handlers.NewStorageHandler(cloudinaryStorageService, userService, logger),
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
