package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tmulu/card-services/internal/cardsvc/models"
)

const defaultJWTSecret = "dev_secret_change_me"

type Config struct {
	Port           string
	DBUrl          string
	JWTSecret      string
	TokenTTL       time.Duration
	RateLimit      int
	AuthCards      bool
	AuthGames      bool
	AllowedOrigins []string
	DemoIdentity   models.Identity
}

// Load reads the service configuration from the environment. Only the
// database URL is mandatory; everything else has a working default.
func Load() (Config, error) {
	cfg := Config{
		Port:      getEnv("CARD_SERVICE_PORT", "3000"),
		DBUrl:     os.Getenv("POSTGRES_URL"),
		JWTSecret: getEnv("JWT_SECRET", defaultJWTSecret),
	}

	if cfg.DBUrl == "" {
		return Config{}, fmt.Errorf("POSTGRES_URL is not set")
	}
	if cfg.JWTSecret == defaultJWTSecret {
		log.Warn("JWT_SECRET not set, using the development default")
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT", "100"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}
	cfg.RateLimit = rateLimit

	cfg.AuthCards, err = strconv.ParseBool(getEnv("AUTH_CARDS", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid AUTH_CARDS: %w", err)
	}

	cfg.AuthGames, err = strconv.ParseBool(getEnv("AUTH_GAMES", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid AUTH_GAMES: %w", err)
	}

	for _, origin := range strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	demoID, err := strconv.ParseInt(getEnv("DEMO_USER_ID", "1"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid DEMO_USER_ID: %w", err)
	}
	cfg.DemoIdentity = models.Identity{
		ID:       demoID,
		Username: getEnv("DEMO_USER", "admin"),
		Password: getEnv("DEMO_PASSWORD", "admin123"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
