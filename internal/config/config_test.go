package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"DB_DRIVER", "DB_DSN", "SERVER_PORT", "LOG_LEVEL", "LOG_FILE",
		"CATALOG_FILE", "CATALOG_MODE", "SERVICE_NAME",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "host=localhost user=ib dbname=ib")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "synthetic", cfg.CatalogMode)
	assert.Equal(t, "ib-compliance", cfg.ServiceName)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_DSN", "file:ib.db")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("CATALOG_MODE", "strict")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "strict", cfg.CatalogMode)
}

func TestLoad_MissingDSN(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.EqualError(t, err, "DB_DSN is not set")
}

func TestLoad_UnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DSN", "x")
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.Error(t, err)
}
