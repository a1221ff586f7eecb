// File: safesched/main.go
package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"safesched/config"
	"safesched/cron"
	"safesched/database"
	availabilityRepo "safesched/database/repository/availability"
	bookinglogRepo "safesched/database/repository/bookinglog"
	"safesched/handlers"
	"safesched/middleware"
	"safesched/routes"
	"safesched/services/conference"
	"safesched/services/parser"
	"safesched/services/scheduling"
	"safesched/services/tasks"
	"safesched/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// repositories.
	var availRepo availabilityRepo.AvailabilityRepository
	var logRepo bookinglogRepo.BookingLogRepository
	var mongoClient *mongo.Client
	if config.AppConfig.AvailabilityBackend == "mongo" {
		database.InitDB()
		mongoClient = database.MongoClient
		availRepo = availabilityRepo.NewMongoAvailabilityRepo()
		logRepo = bookinglogRepo.NewMongoBookingLogRepo()
	} else {
		availRepo = availabilityRepo.NewMemoryAvailabilityRepo()
		logRepo = bookinglogRepo.NewMemoryBookingLogRepo()
	}

	loc := config.Location()
	if config.AppConfig.SeedDemoCalendars {
		if err := availabilityRepo.SeedDemoCalendars(context.Background(), availRepo, time.Now().In(loc)); err != nil {
			logger.Sugar().Fatalf("main: failed to seed demo calendars: %v", err)
		}
	}

	// services.
	requestParser := parser.NewDefaultRequestParser(config.FallbackParticipants())
	linkFormatter := conference.NewDefaultLinkFormatter(rand.NewSource(time.Now().UnixNano()))

	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Availability: availRepo,
		BookingLog:   logRepo,
		Links:        linkFormatter,
		Requester:    config.AppConfig.RequesterName,
		Config: scheduling.SlotConfig{
			SlotStepMinutes: config.AppConfig.SlotStepMinutes,
			WorkStartHour:   config.AppConfig.WorkStartHour,
			WorkEndHour:     config.AppConfig.WorkEndHour,
		},
	}

	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	sessionService := &scheduling.DefaultSessionService{
		Parser:      requestParser,
		Engine:      schedulingEngine,
		CacheClient: utils.GetSessionCacheClient(),
		Location:    loc,
		Reminders:   reminderScheduler,
	}

	// Background reminder worker.
	cron.InitReminderWorker()

	// handlers.
	schedulingHandler := handlers.NewSchedulingHandler(sessionService, logger)
	calendarHandler := handlers.NewCalendarHandler(availRepo)
	bookingLogHandler := handlers.NewBookingLogHandler(logRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		InitiateSession: schedulingHandler.InitiateSession,
		UpdateSession:   schedulingHandler.UpdateSession,
		ConfirmBooking:  schedulingHandler.ConfirmBooking,
		CancelSession:   schedulingHandler.CancelSession,

		ListParticipants: calendarHandler.ListParticipants,
		GetAgenda:        calendarHandler.GetAgenda,
		AddBusyInterval:  calendarHandler.AddBusyInterval,

		ListBookings: bookingLogHandler.ListBookings,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient()}, mongoClient)

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
