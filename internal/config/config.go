package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the server.
type Config struct {
	DatabaseURL string
	ListenAddr  string
}

// Load reads configuration from environment variables with sane defaults.
// A local .env file is honored when present.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ListenAddr:  strings.TrimSpace(os.Getenv("LISTEN_ADDR")),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "tayra.db"
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":5000"
	}

	return cfg, nil
}
