package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"advisor-backend/advisor/model"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	Env             string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string

	// Engine tunables. These are read once at startup and snapshotted into a
	// model.Config; evaluations never observe a mid-flight change.
	HourlyRate           float64
	PrimaryThreshold     float64
	AlternativeThreshold float64
	OpennessFloor        int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	defaults := model.DefaultConfig()
	return Config{
		Port:                 getEnv("PORT", "8080"),
		CORSAllowOrigin:      splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:          dbURL,
		Env:                  env,
		GoogleClientID:       getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:   getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:    getEnv("GOOGLE_REDIRECT_URL", ""),
		UIRedirectURL:        getEnv("UI_REDIRECT_URL", ""),
		HourlyRate:           getEnvFloat("ENGINE_HOURLY_RATE", defaults.HourlyRate),
		PrimaryThreshold:     getEnvFloat("ENGINE_PRIMARY_THRESHOLD", defaults.PrimaryThreshold),
		AlternativeThreshold: getEnvFloat("ENGINE_ALTERNATIVE_THRESHOLD", defaults.AlternativeThreshold),
		OpennessFloor:        getEnvInt("ENGINE_OPENNESS_FLOOR", defaults.OpennessFloor),
	}
}

// EngineConfig snapshots the engine tunables into an immutable model.Config.
// The returned value is what gets passed to every evaluation.
func (c Config) EngineConfig() model.Config {
	cfg := model.DefaultConfig()
	cfg.HourlyRate = c.HourlyRate
	cfg.PrimaryThreshold = c.PrimaryThreshold
	cfg.AlternativeThreshold = c.AlternativeThreshold
	cfg.OpennessFloor = c.OpennessFloor
	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		log.Printf("ignoring invalid %s=%q: %v", key, raw, err)
		return def
	}
	return val
}

func getEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("ignoring invalid %s=%q: %v", key, raw, err)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
