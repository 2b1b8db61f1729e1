package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"

	"luxe-be/internal/cache"
	"luxe-be/internal/config"
	"luxe-be/internal/controllers"
	"luxe-be/internal/identity"
	"luxe-be/internal/jwt"
	"luxe-be/internal/logger"
	"luxe-be/internal/middleware"
	"luxe-be/internal/repository"
	"luxe-be/internal/server"
	"luxe-be/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "catalog-service",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	if cfg.UsesDefaultSecret() {
		log.Warn("JWT_SECRET_KEY not set, using the development secret")
	}

	// Redis is optional - continue with in-memory carts if it is unavailable
	var cartStore repository.CartStore = repository.NewMemoryCartStore()
	if cfg.RedisURL != "" {
		cacheClient, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Warn("failed to connect to redis, keeping carts in memory", slog.Any("error", err))
		} else {
			defer cacheClient.Close()
			cartStore = repository.NewRedisCartStore(cacheClient)
			log.Info("using redis cart store")
		}
	}

	catalog, err := repository.NewProductCatalog(repository.DefaultProducts())
	if err != nil {
		log.Error("failed to load product catalog", slog.Any("error", err))
		os.Exit(1)
	}

	jwtService := jwt.NewJWTService(cfg.JWTSecret, jwt.AccessTokenTTL)
	identityClient := identity.NewClient(cfg.AuthServiceURL, cfg.IdentityTimeout, log)
	resolver := service.NewCartResolver(jwtService, identityClient, log, cfg.StrictIdentity)

	catalogController := controllers.NewCatalogController(service.NewCatalogService(catalog))
	cartController := controllers.NewCartController(service.NewCartService(cartStore, catalog), resolver)

	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer generalRateLimiter.Stop()

	router := server.NewCatalogRouter(server.CatalogRouterParams{
		Logger:            log,
		CatalogController: catalogController,
		CartController:    cartController,
		GeneralLimiter:    generalRateLimiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("confirming identities against auth service",
		slog.String("url", cfg.AuthServiceURL),
		slog.Bool("strict", cfg.StrictIdentity))
	if err := server.Run(ctx, cfg.CatalogAddr, router, log); err != nil {
		log.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}
