package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pregbuddy/pregbuddy/internal/api"
	"github.com/pregbuddy/pregbuddy/internal/i18n"
	"github.com/pregbuddy/pregbuddy/internal/logging"
	"github.com/pregbuddy/pregbuddy/internal/services"
)

func main() {
	// optional; env vars win over the file
	_ = godotenv.Load()

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	port := getEnv("PORT", "8080")
	defaultLanguage := getEnv("DEFAULT_LANGUAGE", "en")
	debug := getEnv("DEBUG", "") == "1"

	appLogger, err := logging.NewLogger(debug)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	i18nManager, err := i18n.NewManager(defaultLanguage)
	if err != nil {
		appLogger.Fatal("i18n init failed", zap.Error(err))
	}

	profiles := services.NewProfileStore()
	tips := services.NewTipService()

	handler, err := api.NewHandler(api.Dependencies{
		Profiles:   profiles,
		Onboarding: services.NewOnboardingWorkflow(profiles),
		Tracking:   services.NewTrackingStore(),
		Tips:       tips,
		Chat:       services.NewChatResponder(),
		Location:   location,
		I18n:       i18nManager,
		Logger:     appLogger,
	})
	if err != nil {
		appLogger.Fatal("handler init failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:               "PregBuddy",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	tips.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	appLogger.Info("PregBuddy listening",
		zap.String("addr", "0.0.0.0:"+port),
		zap.String("tz", location.String()),
	)
	if err := app.Listen(":" + port); err != nil {
		appLogger.Fatal("server exited", zap.Error(err))
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
