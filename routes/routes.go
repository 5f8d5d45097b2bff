package routes

import (
	"io"

	controller "cleanhnote/controllers"
	"cleanhnote/middleware"
	"cleanhnote/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

// Options tunes the rate limits of the credential endpoints
type Options struct {
	AuthRateLimit int
	JoinRateLimit int
	// Storage backs the rate limiter; nil keeps counters in memory
	Storage fiber.Storage
	// AccessLog receives the access log; nil writes to stdout
	AccessLog io.Writer
}

var accessLogFormat = "[${time}] ${status} - ${latency} ${method} ${path} ${respHeader:X-Request-ID}\n"

func accessLogger(opts Options) fiber.Handler {
	return logger.New(logger.Config{
		Format: accessLogFormat,
		Output: opts.AccessLog,
	})
}

func SetupAuthRoutes(app *fiber.App, st *store.Store, opts Options) {
	authController := controller.NewAuthController(st, logrus.WithField("component", "auth"))

	auth := app.Group("/auth", accessLogger(opts))

	auth.Post("/register", authController.Register)
	auth.Post("/login", middleware.RateLimiter("login", opts.AuthRateLimit, opts.Storage), authController.Login)
	auth.Post("/logout", authController.Logout)
	auth.Get("/me", authController.GetCurrentUser)

	logrus.Info("Authentication routes initialized successfully")
}

func SetupAPIRoutes(app *fiber.App, st *store.Store, opts Options) {
	taskController := controller.NewTaskController(st, logrus.WithField("component", "task"))
	teamController := controller.NewTeamController(st, logrus.WithField("component", "team"))
	dashboardController := controller.NewDashboardController(st, logrus.WithField("component", "dashboard"))

	// API group with versioning and session guard
	api := app.Group("/api/v1", accessLogger(opts), middleware.RequireSession(st))

	api.Get("/dashboard", dashboardController.GetDashboard)

	// Personal task routes
	task := api.Group("/tasks")
	task.Post("/", taskController.CreateTask)
	task.Get("/", taskController.GetTasks)
	task.Get("/:id", taskController.GetTask)
	task.Put("/:id/status", taskController.UpdateTaskStatus)

	// Team routes
	team := api.Group("/teams")
	team.Post("/", teamController.CreateTeam)
	team.Get("/", teamController.GetTeams)
	team.Post("/join", middleware.RateLimiter("join", opts.JoinRateLimit, opts.Storage), teamController.JoinTeam)
	team.Get("/:id", teamController.GetTeam)
	team.Post("/:id/tasks", teamController.AssignTeamTask)
	team.Get("/:id/tasks", teamController.GetTeamTasks)

	logrus.Info("API routes initialized successfully")
}

func SetupRoutes(app *fiber.App, st *store.Store, opts Options) {
	// Setup health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupAuthRoutes(app, st, opts)
	SetupAPIRoutes(app, st, opts)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
