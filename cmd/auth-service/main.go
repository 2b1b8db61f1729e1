package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"

	"luxe-be/internal/config"
	"luxe-be/internal/controllers"
	"luxe-be/internal/database"
	"luxe-be/internal/jwt"
	"luxe-be/internal/logger"
	"luxe-be/internal/middleware"
	"luxe-be/internal/repository"
	"luxe-be/internal/server"
	"luxe-be/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "auth-service",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	if cfg.UsesDefaultSecret() {
		log.Warn("JWT_SECRET_KEY not set, using the development secret")
	}

	// Users live in Postgres when configured, otherwise in memory
	var userRepo repository.UserRepository
	if cfg.DatabaseURL != "" {
		db, err := database.NewConnection(cfg.DatabaseURL)
		if err != nil {
			log.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer db.Close()

		if err := database.RunMigrations(db); err != nil {
			log.Error("failed to run migrations", slog.Any("error", err))
			os.Exit(1)
		}
		userRepo = repository.NewPostgresUserRepository(db)
		log.Info("using postgres user store")
	} else {
		userRepo = repository.NewMemoryUserRepository()
		log.Info("DATABASE_URL not set, users are kept in memory")
	}

	jwtService := jwt.NewJWTService(cfg.JWTSecret, jwt.AccessTokenTTL)
	authService := service.NewAuthService(userRepo, jwtService)
	authController := controllers.NewAuthController(authService)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer generalRateLimiter.Stop()
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	defer authRateLimiter.Stop()

	router := server.NewAuthRouter(server.AuthRouterParams{
		Logger:         log,
		AuthController: authController,
		JWTService:     jwtService,
		GeneralLimiter: generalRateLimiter,
		AuthLimiter:    authRateLimiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.AuthAddr, router, log); err != nil {
		log.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}
