package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/gokatarajesh/quiz-game/internal/app"
	"github.com/gokatarajesh/quiz-game/internal/cli"
	"github.com/gokatarajesh/quiz-game/internal/config"
	"github.com/gokatarajesh/quiz-game/internal/logging"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: could not load .env file: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	instance := app.New(cfg)
	ctx := logging.IntoContext(context.Background(), instance.Logger)

	if err := cli.Execute(ctx, instance); err != nil {
		instance.Logger.Fatal().Err(err).Msg("runtime error")
	}
}
