package main

import (
	"net/http"

	"github.com/coachpeter/coach-peter-api/internal/config"
	"github.com/coachpeter/coach-peter-api/internal/database"
	"github.com/coachpeter/coach-peter-api/internal/handlers"
	"github.com/coachpeter/coach-peter-api/internal/recommend"
	"github.com/coachpeter/coach-peter-api/internal/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using environment")
	}

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("failed to connect to database: %s", err)
	}
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("failed to run migrations: %s", err)
	}

	recommender := recommend.NewClient(
		cfg.ExerciseDBBaseURL,
		cfg.ExerciseDBAPIKey,
		&http.Client{Timeout: cfg.ExerciseDBTimeout},
	)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(recover.New())

	h := handlers.New(database.DB, recommender, cfg.JWTSecret)
	routes.Setup(app, h, cfg.JWTSecret)

	log.Infof("starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %s", err)
	}
}
