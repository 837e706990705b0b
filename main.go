package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campushub/config"
	"campushub/cron"
	"campushub/database"
	announcementRepoPkg "campushub/database/repository/announcement"
	timetableRepoPkg "campushub/database/repository/timetable"
	userRepoPkg "campushub/database/repository/user"
	"campushub/handlers"
	"campushub/middleware"
	"campushub/routes"
	announcementSvc "campushub/services/announcement"
	authSvc "campushub/services/auth"
	ai "campushub/services/intelligence"
	timetableSvc "campushub/services/timetable"
	"campushub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	timetableRepo := timetableRepoPkg.NewMongoTimetableRepo()
	announcementRepo := announcementRepoPkg.NewMongoAnnouncementRepo()

	// task queue client for scheduled announcement publishing.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPublishQDB,
	})
	defer queueClient.Close()

	// services.
	authService := &authSvc.DefaultAuthService{Repo: userRepo}
	timetableService := &timetableSvc.DefaultTimetableService{Repo: timetableRepo}
	announcementService := &announcementSvc.DefaultAnnouncementService{
		Repo:  announcementRepo,
		Queue: queueClient,
	}

	geminiClient, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize gemini client: %v", err)
	}
	draftService := &ai.DefaultDraftService{Generator: geminiClient}

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		UserRepo:     userRepo,
		Auth:         handlers.NewAuthHandler(authService),
		Timetable:    handlers.NewTimetableHandler(timetableService, authService),
		Announcement: handlers.NewAnnouncementHandler(announcementService),
		AI:           handlers.NewAIHandler(draftService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for scheduled publishes.
	cron.InitPublishWorker(announcementService)

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
