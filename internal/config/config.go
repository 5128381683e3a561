package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver    string
	DBDSN       string
	ServerPort  string
	LogLevel    string
	LogFile     string
	CatalogFile string
	CatalogMode string
	ServiceName string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:    strings.ToLower(os.Getenv("DB_DRIVER")),
		DBDSN:       os.Getenv("DB_DSN"),
		ServerPort:  os.Getenv("SERVER_PORT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogFile:     os.Getenv("LOG_FILE"),
		CatalogFile: os.Getenv("CATALOG_FILE"),
		CatalogMode: os.Getenv("CATALOG_MODE"),
		ServiceName: os.Getenv("SERVICE_NAME"),
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}
	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("DB_DRIVER %q is not supported (postgres, sqlite)", cfg.DBDriver)
	}
	if cfg.DBDSN == "" {
		return nil, errors.New("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.CatalogMode == "" {
		cfg.CatalogMode = "synthetic"
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "ib-compliance"
	}

	return cfg, nil
}
