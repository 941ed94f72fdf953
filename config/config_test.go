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

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: s3cret\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, "frota-api", cfg.JWT.Issuer)
	assert.Equal(t, 120, cfg.JWT.ExpMin)
}

func TestLoadRequiresSecret(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret")
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 9000
db:
  driver: sqlite
  path: test.db
jwt:
  secret: s3cret
  exp_min: 30
admin:
  email: adm@frota.local
  senha: admin123
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "test.db", cfg.DB.Path)
	assert.Equal(t, 30, cfg.JWT.ExpMin)
	assert.Equal(t, "adm@frota.local", cfg.Admin.Email)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
