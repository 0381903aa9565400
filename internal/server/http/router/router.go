package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/polkiloo/canteen/internal/config"
	"github.com/polkiloo/canteen/internal/server/http/handlers"
	"github.com/polkiloo/canteen/internal/server/http/middleware"
)

// Params groups router dependencies.
type Params struct {
	fx.In

	Facade handlers.CanteenFacade
	Config *config.Config
	Logger *zap.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	if p.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(cors.New(corsConfig(p.Config.AllowedOrigins)))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.NoRoute(handlers.NotFound)

	systemHandler := handlers.NewSystemHandler(p.Facade)
	authHandler := handlers.NewAuthHandler(p.Facade)
	menuHandler := handlers.NewMenuHandler(p.Facade)
	orderHandler := handlers.NewOrderHandler(p.Facade)
	paymentHandler := handlers.NewPaymentHandler(p.Facade)
	qrHandler := handlers.NewQRHandler(p.Facade)

	authRequired := middleware.AuthRequired(p.Facade)
	limiter := middleware.NewRateLimiter(rate.Limit(p.Config.AuthRateLimit), p.Config.AuthRateBurst)

	engine.GET("/", systemHandler.Root)
	engine.GET("/health", systemHandler.Health)

	api := engine.Group("/api")

	auth := api.Group("/auth", limiter.Middleware())
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/staff-login", authHandler.StaffLogin)
	auth.GET("/verify", authRequired, authHandler.Verify)

	menu := api.Group("/menu")
	menu.GET("/items", menuHandler.List)
	menu.GET("/items/:id", menuHandler.Get)
	menu.GET("/categories", menuHandler.Categories)
	staffMenu := menu.Group("", authRequired, middleware.StaffOnly())
	staffMenu.POST("/items", menuHandler.Create)
	staffMenu.PUT("/items/:id", menuHandler.Update)
	staffMenu.DELETE("/items/:id", menuHandler.Delete)

	orders := api.Group("/orders", authRequired)
	orders.POST("", orderHandler.Create)
	orders.POST("/", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id/payment", orderHandler.UpdatePayment)
	orders.PUT("/:id/status", orderHandler.UpdateStatus)

	payment := api.Group("/payment", authRequired)
	payment.POST("/generate-upi", paymentHandler.GenerateUPI)
	payment.POST("/verify", paymentHandler.Verify)

	qr := api.Group("/qr")
	qr.POST("/generate", qrHandler.Generate)
	qr.POST("/generate-multiple", qrHandler.GenerateMultiple)

	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Encoding", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Authorization", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
