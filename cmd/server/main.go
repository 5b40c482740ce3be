package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autobot_site_go/config"
	"autobot_site_go/db"
	"autobot_site_go/handlers"
	"autobot_site_go/middleware"
	"autobot_site_go/models"
	"autobot_site_go/services"
	"autobot_site_go/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.Lead{}, &models.Subscriber{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	middleware.InitAssetVersions("static")

	// Alerts on repeated contact form rejections
	monitor := services.InitAbuseMonitor(cfg)
	defer monitor.Stop()

	// Storage for lead digest spreadsheets
	services.InitializeStorage(cfg)

	// Background jobs
	scheduler, err := jobs.StartScheduler(db.DB, cfg)
	if err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	if scheduler != nil {
		defer scheduler.Stop()
	}

	// Metrics registry with the Go runtime and process collectors
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Metrics(reg))
	e.Use(echomiddleware.BodyLimit("64K"))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.CSRF(cfg))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	leadLimiter := middleware.NewLeadFormRateLimiter(cfg)
	defer leadLimiter.Stop()
	subscribeLimiter := middleware.NewSubscribeRateLimiter()
	defer subscribeLimiter.Stop()

	// Public routes
	e.GET("/", handlers.LandingHandler)
	e.POST("/contact", handlers.ContactPostHandler, leadLimiter.Middleware())
	e.POST("/contact/reset", handlers.ContactResetHandler)
	e.POST("/subscribe", handlers.SubscribePostHandler, subscribeLimiter.Middleware())

	// SEO and operations
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/healthz", handlers.HealthHandler)
	e.GET("/metrics", middleware.MetricsHandler(reg))

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("[WARNING] Graceful shutdown failed: %v", err)
	}
	log.Println("Server stopped")
}
