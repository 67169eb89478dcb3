package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rrahullkumar/shushiman/internal/config"
	"github.com/Rrahullkumar/shushiman/internal/logging"
	"github.com/Rrahullkumar/shushiman/internal/middleware"
	"github.com/Rrahullkumar/shushiman/internal/repository"
	"github.com/Rrahullkumar/shushiman/internal/server"
	"github.com/Rrahullkumar/shushiman/internal/service"
	"github.com/Rrahullkumar/shushiman/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", config.EnvProduction).WithError(err).Fatal("failed to load config")
	}

	log := logging.New(cfg.LogLevel, cfg.Env)
	if envErr != nil {
		log.Debug("no .env file found, relying on environment variables")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer dbPool.Close()

	// --- Migrations ---
	if err := config.RunMigrations(context.Background(), dbPool); err != nil {
		log.WithError(err).Fatal("failed to run database migrations")
	}

	// --- Redis (optional, login throttling) ---
	redisClient, err := config.ConnectRedis(context.Background(), cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}
	var limiter *middleware.RateLimiter
	if redisClient != nil {
		defer redisClient.Close()
		limiter = middleware.NewRateLimiter(redisClient, cfg.LoginRateLimit, time.Minute, "ratelimit:auth", log)
	}

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, utils.DefaultTokenTTL)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	menuRepo := repository.NewMenuRepository(dbPool)
	orderRepo := repository.NewOrderRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil, log, metrics)
	menuService := service.NewMenuService(menuRepo)
	orderService := service.NewOrderService(orderRepo, menuRepo, log)

	router := server.NewRouter(server.Deps{
		Log:           log,
		FrontendURL:   cfg.FrontendURL,
		ExposeDetails: !cfg.IsProduction(),
		JWT:           jwtUtil,
		Auth:          authService,
		Menu:          menuService,
		Orders:        orderService,
		DB:            dbPool,
		Metrics:       metrics,
		Gatherer:      registry,
		RateLimiter:   limiter,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}

	log.Info("server exiting")
}
