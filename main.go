package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/insightdelivered/mae-pdf-processing/internal/api"
	"github.com/insightdelivered/mae-pdf-processing/internal/parser"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments use plain env vars
	_ = godotenv.Load()

	log := newLogger()
	registry := parser.NewRegistry()

	app := fiber.New(fiber.Config{
		AppName:               "mae-pdf-processing-api",
		BodyLimit:             64 << 20,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: getEnv("CORS_ORIGINS", "*"),
	}))

	h := &api.Handler{Registry: registry, Log: log, Version: version}
	h.RegisterRoutes(app)

	port := getEnv("PORT", "8000")
	log.Info().
		Str("port", port).
		Str("version", version).
		Strs("modes", registry.Modes()).
		Msg("starting mae-pdf-processing-api")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Logger()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
