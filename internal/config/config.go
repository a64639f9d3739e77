package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string
	TemplatesGlob string
	StaticDir     string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		TemplatesGlob: "web/templates/*.html",
		StaticDir:     "./web/static",
	}

	if cfg.DBDSN == "" {
		// no DSN configured: fall back to a local sqlite file
		cfg.DBDSN = "issue_tracker.db"
		log.Println("DB_DSN is not set, using local sqlite database issue_tracker.db")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			log.Fatal("SESSION_SECRET is not set")
		}
		cfg.SessionSecret = "dev-secret"
		log.Println("SESSION_SECRET is not set, using insecure dev secret")
	}

	return cfg
}
