package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"cleanhnote/config"
	"cleanhnote/middleware"
	"cleanhnote/models"
	"cleanhnote/routes"
	"cleanhnote/store"
	"cleanhnote/utils"
)

func main() {
	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := config.AppConfig

	// Initialize logger and error reporting
	utils.ConfigureLogger(cfg.LogLevel, cfg.LogJSON || cfg.IsProduction())
	if err := utils.InitSentry(cfg.SentryDSN, cfg.Environment); err != nil {
		logrus.Fatalf("Failed to initialize Sentry: %v", err)
	}
	defer sentry.Flush(2 * time.Second)

	// One store per process; every handler shares it
	st := store.New(storeOptions(cfg)...)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName: "CleanHNote",
	})
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:           3600,
	}))

	storage := middleware.NewRateLimitStorage(cfg.Redis)
	if storage != nil {
		defer storage.Close()
	}

	// Setup routes
	routes.SetupRoutes(app, st, routes.Options{
		AuthRateLimit: cfg.RateLimitAuth,
		JoinRateLimit: cfg.RateLimitJoin,
		Storage:       storage,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logrus.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			logrus.WithError(err).Error("Failed to shut down server")
		}
	}()

	// Start server
	logrus.WithField("port", cfg.ServerPort).Info("🚀 Server starting")
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
	logrus.Info("Server stopped")
}

func storeOptions(cfg config.Config) []store.Option {
	opts := []store.Option{
		store.WithLogger(logrus.WithField("component", "store")),
	}
	if cfg.DemoAccount.Enabled {
		opts = append(opts, store.WithAccounts(models.Account{
			Email:    cfg.DemoAccount.Email,
			Password: cfg.DemoAccount.Password,
			Username: cfg.DemoAccount.Username,
			Plan:     models.PlanPremium,
		}))
	}
	return opts
}
