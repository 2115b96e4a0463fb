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
	path := filepath.Join(t.TempDir(), "planora.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Listen)
	assert.True(t, cfg.DemoMode)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
listen: ":9000"
demo_mode: false
jwt_secret: sekrit
allowed_origins:
  - https://app.example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Listen)
	assert.False(t, cfg.DemoMode)
	assert.Equal(t, "sekrit", cfg.JWTSecret)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `listen: ":9000"`)
	t.Setenv("PLANORA_LISTEN", ":7777")
	t.Setenv("PLANORA_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.Listen)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "listen: [:::")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_SecretRequiredOutsideDemoMode(t *testing.T) {
	path := writeConfig(t, "demo_mode: false")
	_, err := Load(path)
	assert.ErrorContains(t, err, "jwt_secret")
}
