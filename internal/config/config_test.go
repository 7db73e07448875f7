package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "GigaChat", cfg.LLM.Model)
	require.Equal(t, "GIGACHAT_API_PERS", cfg.LLM.Scope)
	require.Equal(t, 2048, cfg.LLM.MaxTokens)
	require.Equal(t, time.Minute, cfg.LLM.Timeout)
	require.Equal(t, "templates", cfg.Paths.Templates)
	require.Equal(t, "output", cfg.Paths.Output)
	require.Equal(t, "logs", cfg.Paths.Logs)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `llm:
  credentials: base64-key
  model: GigaChat-Pro
  temperature: 0.4
paths:
  templates: /srv/templates
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "GigaChat-Pro", cfg.LLM.Model)
	require.Equal(t, "base64-key", cfg.LLM.Credentials)
	require.Equal(t, 0.4, cfg.LLM.Temperature)
	require.Equal(t, "/srv/templates", cfg.Paths.Templates)
	// Unset values keep their defaults.
	require.Equal(t, "output", cfg.Paths.Output)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DOCFLOW_LLM_CREDENTIALS", "env-key")
	t.Setenv("DOCFLOW_LLM_MODEL", "GigaChat-Max")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "env-key", cfg.LLM.Credentials)
	require.Equal(t, "GigaChat-Max", cfg.LLM.Model)
}

func TestValidateLLM(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.ValidateLLM())
	cfg.LLM.Credentials = "key"
	require.NoError(t, cfg.ValidateLLM())
}
