package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/crud/internal/nexus"
	"github.com/joefazee/crud/models"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(nexus.WithOnlyEnvironment())
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.Persons.TokenTTL)
	assert.Equal(t, "full", cfg.Persons.ExcelColumns)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("PERSONS_DISABLE_DELETE", "true")
	t.Setenv("PERSONS_EXCEL_COLUMNS", "contact")

	cfg, err := LoadConfig(nexus.WithOnlyEnvironment())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.True(t, cfg.Persons.DisableDelete)
	assert.Equal(t, "contact", cfg.Persons.ExcelColumns)
}

func TestLoadConfig_PostgresNeedsCredentials(t *testing.T) {
	t.Setenv("APP_STORE", "postgres")

	_, err := LoadConfig(nexus.WithOnlyEnvironment())
	assert.ErrorIs(t, err, models.ErrDatabaseCredentialNotConfigured)
}

func TestLoadConfig_RejectsShortTokenKey(t *testing.T) {
	t.Setenv("TOKEN_SYMMETRIC_KEY", "short")

	_, err := LoadConfig(nexus.WithOnlyEnvironment())
	assert.ErrorIs(t, err, models.ErrInvalidTokenKey)
}

func TestLoadConfig_RejectsUnknownStore(t *testing.T) {
	t.Setenv("APP_STORE", "sqlite")

	_, err := LoadConfig(nexus.WithOnlyEnvironment())
	var cfgErr *nexus.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, nexus.ErrCodeValidation, cfgErr.Code)
}
