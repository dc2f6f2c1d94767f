package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/akibsaleh/dwellife-server/internal/utils"
)

const AppName = "dwellife-server"

type Config struct {
	AppName string
	AppPort string
	AppUrl  string

	DatabaseURL       string
	AccessTokenSecret string
	AccessTokenTTL    time.Duration
	StripeSecretKey   string

	SeedApartments bool
}

// LoadConfig reads the runtime environment. Required values are fatal
// when missing; a local .env file is honored for development.
func LoadConfig() *Config {
	if err := godotenv.Load(); err == nil {
		utils.Logger.Debug("Loaded environment from .env")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}
	tokenSecret := os.Getenv("ACCESS_TOKEN_SECRET")
	if tokenSecret == "" {
		utils.Logger.Fatal("ACCESS_TOKEN_SECRET env var is missing")
	}
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		utils.Logger.Fatal("STRIPE_SECRET_KEY env var is missing")
	}

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "5000"
	}
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:5173"
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("ACCESS_TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			utils.Logger.WithError(err).Fatalf("Invalid ACCESS_TOKEN_TTL %q", raw)
		}
		ttl = parsed
	}

	cfg := &Config{
		AppName:           AppName,
		AppPort:           appPort,
		AppUrl:            appURL,
		DatabaseURL:       dbURL,
		AccessTokenSecret: tokenSecret,
		AccessTokenTTL:    ttl,
		StripeSecretKey:   stripeKey,
		SeedApartments:    os.Getenv("SEED_APARTMENTS") == "true",
	}

	utils.Logger.Infof("Loaded config for %s (port %s, token ttl %s)", AppName, appPort, ttl)
	return cfg
}
