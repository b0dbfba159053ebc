package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port               string
	DBPath             string
	JWTSecret          string
	DefaultCostPerSite float64 // fallback survey cost when a request omits it
}

// Load reads configuration from the environment, applying defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/lulc/lulc.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	costPerSite := 5000.0
	if raw := os.Getenv("SURVEY_COST_PER_SITE"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			costPerSite = v
		}
	}

	return &Config{
		Port:               port,
		DBPath:             dbPath,
		JWTSecret:          jwtSecret,
		DefaultCostPerSite: costPerSite,
	}
}
