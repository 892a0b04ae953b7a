package config

import (
	"os"
	"strconv"
)

// Config holds environment-backed settings. CLI flags override these.
type Config struct {
	DataRoot       string
	ReportDir      string
	LogLevel       string
	InitialCapital float64
	Seed           int64
}

// Load reads configuration from the environment with sane defaults.
// Call godotenv.Load first if a .env file should participate.
func Load() *Config {
	return &Config{
		DataRoot:       getEnv("DATA_ROOT", "data"),
		ReportDir:      getEnv("REPORT_DIR", "reports"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		InitialCapital: getEnvFloat("INITIAL_CAPITAL", 1000.0),
		Seed:           getEnvInt64("SEED", 42),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}
