package config

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type Config struct {
	DB_URL       string
	Port         string
	JWTSecret    string
	TokenTTL     time.Duration
	SeedDemoUser bool
	Environment  string
	CorsConfig   cors.Options
}

var Envs = initConfig()

func initConfig() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return Config{
		DB_URL:       getEnv("DB_URL", "notes.db"),
		Port:         getEnv("PORT", "8080"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		TokenTTL:     time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,
		SeedDemoUser: getEnvBool("SEED_DEMO_USER", false),
		Environment:  getEnv("ENV", "development"),
		CorsConfig:   CorsConfig(),
	}
}

// MustJWTSecret returns the signing secret or exits. There is deliberately
// no fallback: a server signing tokens with a known default is worse than
// one that refuses to start.
func MustJWTSecret() string {
	if Envs.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	return Envs.JWTSecret
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid value for %s: %q, using %d", key, value, fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("Invalid value for %s: %q, using %t", key, value, fallback)
	}
	return fallback
}

func CorsConfig() cors.Options {
	origins := []string{getEnv("CORS_ORIGINS", "*")}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
