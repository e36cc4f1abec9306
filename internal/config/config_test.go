package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
server:
  port: 5000
  metrics_port: 9091
  allowed_origin: "*"

db:
  connection_string: "jobboard.db"

auth:
  jwt_secret: "file-secret"
  token_ttl: 168h

uploads:
  dir: "./uploads"
  max_size_bytes: 5242880

logger:
  log_level: "INFO"
  app_name: "job-board"
  output_file: "./logs/errors.log"
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeTestConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.AllowedOrigin)
	assert.Equal(t, "jobboard.db", cfg.DB.ConnectionString)
	assert.Equal(t, "file-secret", cfg.Auth.JwtSecret)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, int64(5242880), cfg.Uploads.MaxSizeBytes)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_CONNECTION_STRING", "override.db")

	cfg, err := loadConfig(writeTestConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JwtSecret)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "override.db", cfg.DB.ConnectionString)
}

func TestLoadConfig_MissingSecretFails(t *testing.T) {
	withoutSecret := `
server:
  port: 5000
  metrics_port: 9091

db:
  connection_string: "jobboard.db"

auth:
  token_ttl: 168h

uploads:
  dir: "./uploads"

logger:
  log_level: "INFO"
  output_file: "./logs/errors.log"
`
	_, err := loadConfig(writeTestConfig(t, withoutSecret))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}
