package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"luxe-be/internal/controllers"
	"luxe-be/internal/jwt"
	"luxe-be/internal/middleware"
)

// AuthRouterParams groups dependencies for the identity service router.
type AuthRouterParams struct {
	Logger         *slog.Logger
	AuthController *controllers.AuthController
	JWTService     *jwt.JWTService
	GeneralLimiter *middleware.RateLimiter // optional
	AuthLimiter    *middleware.RateLimiter // optional, register/login only
}

// NewAuthRouter builds the identity service routes.
func NewAuthRouter(p AuthRouterParams) *gin.Engine {
	router := newEngine(p.Logger, "auth-service", p.GeneralLimiter)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Luxe Jewelry Store Auth Service"})
	})

	auth := router.Group("/auth")
	{
		public := auth.Group("")
		if p.AuthLimiter != nil {
			public.Use(p.AuthLimiter.LimitMiddleware())
		}
		public.POST("/register", p.AuthController.Register)
		public.POST("/login", p.AuthController.Login)

		// Admin authorization is out of scope; the listing stays open.
		auth.GET("/users", p.AuthController.ListUsers)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(p.JWTService))
		{
			protected.GET("/me", p.AuthController.Me)
			protected.PUT("/me", p.AuthController.UpdateMe)
			protected.POST("/change-password", p.AuthController.ChangePassword)
			protected.POST("/logout", p.AuthController.Logout)
		}
	}

	return router
}

// CatalogRouterParams groups dependencies for the catalog/cart service router.
type CatalogRouterParams struct {
	Logger            *slog.Logger
	CatalogController *controllers.CatalogController
	CartController    *controllers.CartController
	GeneralLimiter    *middleware.RateLimiter // optional
}

// NewCatalogRouter builds the catalog and cart routes.
func NewCatalogRouter(p CatalogRouterParams) *gin.Engine {
	router := newEngine(p.Logger, "catalog-service", p.GeneralLimiter)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Luxe Jewelry Store API"})
	})

	api := router.Group("/api")
	{
		api.GET("/products", p.CatalogController.ListProducts)
		api.GET("/products/:product_id", p.CatalogController.GetProduct)
		api.GET("/categories", p.CatalogController.Categories)
		api.GET("/stats", p.CatalogController.Stats)

		cart := api.Group("/cart")
		cart.GET("", p.CartController.GetCart)
		cart.GET("/summary", p.CartController.Summary)
		cart.POST("/:session_id/add", p.CartController.AddItem)
		cart.PUT("/:session_id/item/:item_id", p.CartController.UpdateItem)
		cart.DELETE("/:session_id/item/:item_id", p.CartController.RemoveItem)
		cart.DELETE("/:session_id", p.CartController.ClearCart)
	}

	return router
}

func newEngine(logger *slog.Logger, service string, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// Health checks are not rate limited
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   service,
			"timestamp": time.Now().UTC(),
		})
	})
	router.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"service":   service,
			"timestamp": time.Now().UTC(),
		})
	})

	if limiter != nil {
		router.Use(limiter.LimitMiddleware())
	}
	return router
}
