package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/memoday/memoday-backend/internal/client"
	"github.com/memoday/memoday-backend/internal/tui"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "memoday-tui").Logger()

	serverURL := flag.String("server", envOr("MEMODAY_SERVER", "http://localhost:8080"), "memo API base URL")
	token := flag.String("token", os.Getenv("MEMODAY_TOKEN"), "session token issued after OAuth sign-in")
	flag.Parse()

	if *token == "" {
		log.Fatal().Msg("session token required: sign in via the web flow and set MEMODAY_TOKEN")
	}

	api := client.New(client.Config{
		BaseURL:      *serverURL,
		SessionToken: *token,
		Timeout:      10 * time.Second,
	})

	if err := tui.New(api).Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("tui exited with error")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
