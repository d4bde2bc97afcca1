package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.GetAddress())
	assert.Equal(t, DefaultDatabaseURL, cfg.Database.URL)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  host: 127.0.0.1
  port: 9090
database:
  url: postgres://user:pass@db:5432/taskstore
gin_mode: release
cors:
  origins:
    - https://example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GetAddress())
	assert.Equal(t, "postgres://user:pass@db:5432/taskstore", cfg.Database.URL)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, []string{"https://example.com"}, cfg.CORS.Origins)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
database:
  url: sqlite://./from-file.db
`)
	t.Setenv("DATABASE_URL", "mysql://root:secret@db:3306/taskstore")
	t.Setenv("PORT", "3000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mysql://root:secret@db:3306/taskstore", cfg.Database.URL)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	// Only the default lookup tolerates absence; an explicitly named file
	// that does not exist is an error.
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidPort(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 99999
`)

	_, err := Load(path)
	assert.Error(t, err)
}
