// File: tutorly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorly/config"
	"tutorly/cron"
	"tutorly/database"
	branchRepo "tutorly/database/repository/branch"
	"tutorly/handlers"
	"tutorly/middleware"
	"tutorly/routes"
	"tutorly/services/schedule"
	"tutorly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	branches := branchRepo.NewMongoBranchRepo()
	if err := branches.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure branch indexes: %v", err)
	}

	snapshotTTL := time.Duration(config.AppConfig.SnapshotTTLMin) * time.Minute
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo:        branches,
		Cache:       utils.GetCacheClient(),
		Queue:       queueClient,
		SnapshotTTL: snapshotTTL,
	}
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger)

	// Background snapshot refresh worker and health monitor.
	cron.InitSnapshotWorker(branches, utils.GetCacheClient(), snapshotTTL)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient()},
		database.MongoClient,
	)

	// Register routes.
	routes.RegisterRoutes(router, scheduleHandler)

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
