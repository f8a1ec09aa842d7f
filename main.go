package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"handyhub/config"
	"handyhub/handlers"
	"handyhub/middleware"
	"handyhub/routes"
	"handyhub/services/bridge"
	"handyhub/services/device"
	"handyhub/services/timer"
	"handyhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var redisClient *redis.Client
	if cfg.SessionBackend == "redis" {
		if err := utils.InitSessionCache(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		redisClient = utils.GetSessionCacheClient()
	}

	records, err := device.Records(cfg, redisClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to set up session storage: %v", err)
	}
	registry := device.NewRegistry(device.OptionsFromConfig(cfg, records, logger))
	registry.StartSweeper(ctx, time.Minute)

	// Host calls are best effort; a missing host never blocks startup.
	bridge.Setup(ctx, bridge.New(cfg.HostBridgeURL), cfg.StatusBarColor, logger)
	utils.StartHealthMonitor(ctx, redisClient, registry.Len)

	issuer := utils.NewTokenIssuer(cfg.JWTSecret, 24*time.Hour)
	handlerBundle := handlers.NewHandlerBundle(registry, issuer, handlers.NewRevealHandler(timer.Real{}, cfg.RevealDelay))

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.NewRateLimiter(cfg.MaxRequestsPerMin).Middleware())

	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	cancel()
	registry.Close()
	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
