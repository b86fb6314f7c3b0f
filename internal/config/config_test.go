package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8081
  env: production
database:
  url: postgres://u:p@localhost:5432/insurance
jwt:
  secret: s3cret
upload:
  max_size: 2048
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, int64(2048), cfg.Upload.MaxSize)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Contains(t, cfg.Upload.AllowedExtensions, ".pdf")
	assert.Equal(t, 4, cfg.Upload.Parallelism)
	assert.Equal(t, 320, cfg.Upload.ThumbnailSize)
	assert.Equal(t, 2*time.Minute, cfg.Redis.TTL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://file
jwt:
  secret: from-file
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.Database.DSN)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "x")

	_, err := Load()
	assert.Error(t, err)
}
