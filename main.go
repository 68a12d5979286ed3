// File: glowdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowdesk/config"
	"glowdesk/cron"
	"glowdesk/database"
	bookingRepo "glowdesk/database/repository/booking"
	"glowdesk/handlers"
	"glowdesk/routes"
	"glowdesk/services/booking"
	"glowdesk/services/distance"
	"glowdesk/services/notification"
	"glowdesk/services/scheduling"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(func(c *gin.Context) {
		c.Set("logger", logger)
		c.Next()
	})
	stripe.Key = config.AppConfig.StripeKey

	// Scheduling engine, built from the configured week and catalog.
	week, err := config.AppConfig.WeeklyHours()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid opening hours: %v", err)
	}
	calendar, err := scheduling.NewCalendar(week)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid opening hours: %v", err)
	}
	catalog, err := scheduling.NewCatalog(config.ServiceCatalog())
	if err != nil {
		logger.Sugar().Fatalf("main: invalid service catalog: %v", err)
	}
	fullDayStart, err := config.AppConfig.FullDayStartMinutes()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid full-day start: %v", err)
	}
	policy := scheduling.Policy{
		SlotStepMinutes:  config.AppConfig.SlotStepMinutes,
		SafetyMarginMin:  config.AppConfig.SafetyMarginMin,
		FullDayStartMin:  fullDayStart,
		DepositPercent:   config.AppConfig.DepositPercent,
		Currency:         config.AppConfig.Currency,
		BlockingStatuses: config.AppConfig.BlockingStatusList(),
	}
	travelRule := scheduling.TravelFeeRule{
		ThresholdKm: config.AppConfig.TravelThresholdKm,
		BaseFee:     config.AppConfig.TravelBaseFee,
		PerKmRate:   config.AppConfig.TravelPerKmRate,
	}
	engine := scheduling.NewEngine(calendar, catalog, travelRule, policy)

	// Repositories.
	repo := bookingRepo.NewMongoBookingRepo(engine.Policy().BlockingStatuses)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
		}
		cancel()
	}

	// Services.
	notifier := &notification.LogNotificationService{Logger: logger}
	distanceProvider := distance.NewGoogleProvider(
		config.AppConfig.GoogleAPIKey,
		config.AppConfig.SalonAddress,
		logger,
	)
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer asynqClient.Close()

	var payments booking.PaymentHandler = &booking.CashPaymentHandler{Logger: logger}
	if config.AppConfig.StripeKey != "" {
		payments = &booking.StripePaymentHandler{Logger: logger}
	}

	bookingService := &booking.DefaultBookingService{
		Engine:   engine,
		Repo:     repo,
		Payments: payments,
		Notifier: notifier,
		Distance: distanceProvider,
		Asynq:    asynqClient,
		Logger:   logger,
	}
	handlers.SetBookingService(bookingService)

	cron.InitReminderWorker(repo, notifier)

	routes.RegisterRoutes(router)

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
