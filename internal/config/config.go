package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// DataSource is a file path or an http(s) URL of the JSON data file.
	DataSource string

	// HTTPTimeout bounds a remote data source download.
	HTTPTimeout time.Duration

	// SummaryInterval controls how often the summary report is logged (0 = disabled).
	SummaryInterval time.Duration

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.DataSource = getenvDefault("DATA_SOURCE", "data/weather.json")

	timeout, err := getenvDuration("HTTP_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.HTTPTimeout = timeout

	interval, err := getenvDuration("SUMMARY_INTERVAL", "60m")
	if err != nil {
		return nil, err
	}
	if interval < 0 {
		return nil, fmt.Errorf("invalid SUMMARY_INTERVAL: must not be negative")
	}
	cfg.SummaryInterval = interval

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
