package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizroom/internal/adapter/llm"
	"quizroom/internal/adapter/notify"
	"quizroom/internal/config"
	"quizroom/internal/domain"
	"quizroom/internal/handler"
	"quizroom/internal/logger"
	"quizroom/internal/middleware"
	"quizroom/internal/repository/memory"
	"quizroom/internal/service"
	"quizroom/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// External text-generation collaborator
	generator, err := llm.NewOllamaGenerator(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create text generator", zap.Error(err))
	}

	// Fire-and-forget persistence side-channel. The service layer tolerates
	// a nil notifier, so a missing Redis address only disables the channel.
	var notifier domain.Notifier
	if cfg.Redis.Address != "" {
		redisClient, err := notify.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		notifier = notify.NewRedisNotifier(redisClient)
		appLogger.Info("Redis notifier initialized")
	} else {
		appLogger.Warn("Redis address not configured, persistence notifications disabled")
	}

	// In-memory stores
	quizStore := memory.NewQuizStore()
	submissionLedger := memory.NewSubmissionLedger()

	// Services
	quizService := service.NewQuizGenerationService(generator, quizStore, notifier)
	gradingService := service.NewGradingService(quizStore, submissionLedger, notifier)
	dashboardService := service.NewDashboardService(quizStore, submissionLedger)

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	// Handlers
	validator := validation.NewValidator(cfg.Generation.MaxCount)
	quizHandler := handler.NewQuizHandler(quizService, validator)
	submissionHandler := handler.NewSubmissionHandler(gradingService, validator)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")

	// Quiz routes
	apiGroup.Post("/quizzes", middleware.Protected(authService), middleware.RequireRole(domain.RoleEducator), quizHandler.CreateQuiz)
	apiGroup.Get("/quizzes", middleware.Protected(authService), quizHandler.ListQuizzes)
	apiGroup.Get("/quizzes/:id", middleware.Protected(authService), quizHandler.GetQuiz)

	// Submission routes
	apiGroup.Post("/quizzes/:id/submissions", middleware.Protected(authService), submissionHandler.SubmitAnswers)

	// Dashboard routes
	apiGroup.Get("/dashboard/educator", middleware.Protected(authService), middleware.RequireRole(domain.RoleEducator), dashboardHandler.EducatorDashboard)
	apiGroup.Get("/dashboard/me", middleware.Protected(authService), dashboardHandler.StudentDashboard)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
