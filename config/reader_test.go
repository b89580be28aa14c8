package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
db:
  driver: postgres
  name: nexus
  host: localhost
  port: 5432
  user: nexus
  password: secret
  replicas:
    - host: replica1
      port: 5432
backend:
  host: 0.0.0.0
  port: 8081
  mode: release
logs:
  level: debug
`)

	conf, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", conf.Database.Driver)
	assert.Equal(t, "nexus", conf.Database.Name)
	require.Len(t, conf.Database.Replicas, 1)
	assert.Equal(t, "replica1", conf.Database.Replicas[0].Host)
	assert.Equal(t, 8081, conf.Backend.Port)
	assert.Equal(t, "release", conf.Backend.Mode)
	assert.Equal(t, "debug", conf.Logs.Level)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "backend:\n  host: 127.0.0.1\n")

	conf, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", conf.Database.Driver)
	assert.Equal(t, "nexus.db", conf.Database.Path)
	assert.Equal(t, 3000, conf.Backend.Port)
	assert.Equal(t, "dist", conf.Backend.StaticDir)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
