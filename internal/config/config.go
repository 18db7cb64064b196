package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecretKey string
	BcryptCost   int
	TokenTTLHrs  int
	Env          string
}

// Load reads .env (if present) and builds the config. Test mode drops the
// bcrypt cost so test suites don't burn CPU hashing passwords.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	cfg := Config{
		Port:         getenv("PORT", "3000"),
		DatabaseURL:  getenv("DATABASE_URL", "postgres://localhost:5432/jobly?sslmode=disable"),
		JWTSecretKey: getenv("JWT_SECRET_KEY", "testKEY"),
		Env:          getenv("APP_ENV", "development"),
		TokenTTLHrs:  getenvInt("TOKEN_TTL_HOURS", 24),
	}

	if cfg.Env == "test" {
		cfg.BcryptCost = 4
	} else {
		cfg.BcryptCost = 12
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
