// Package config loads Docflow configuration from file, environment and
// defaults via viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the process configuration, built once at startup and passed to
// collaborators explicitly.
type Config struct {
	LLM   LLMConfig   `mapstructure:"llm"`
	Paths PathsConfig `mapstructure:"paths"`
}

// LLMConfig configures the GigaChat backend.
type LLMConfig struct {
	Credentials string        `mapstructure:"credentials"`
	Scope       string        `mapstructure:"scope"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Insecure    bool          `mapstructure:"insecure"`
	BaseURL     string        `mapstructure:"base_url"`
	AuthURL     string        `mapstructure:"auth_url"`
}

// PathsConfig locates the working directories and files.
type PathsConfig struct {
	Templates string `mapstructure:"templates"`
	Output    string `mapstructure:"output"`
	Logs      string `mapstructure:"logs"`
	History   string `mapstructure:"history"`
	Profile   string `mapstructure:"profile"`
}

// Load reads configuration. An explicit file path is required to exist;
// otherwise the default locations are searched and a missing file is fine.
// Environment variables use the DOCFLOW_ prefix with underscores
// (DOCFLOW_LLM_CREDENTIALS and so on) and override file values.
func Load(file string) (*Config, error) {
	v := viper.New()

	// Every key gets a default so AutomaticEnv can surface env-only
	// values through Unmarshal.
	v.SetDefault("llm.credentials", "")
	v.SetDefault("llm.scope", "GIGACHAT_API_PERS")
	v.SetDefault("llm.model", "GigaChat")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.max_tokens", 2048)
	v.SetDefault("llm.timeout", time.Minute)
	v.SetDefault("llm.insecure", false)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.auth_url", "")
	v.SetDefault("paths.templates", "templates")
	v.SetDefault("paths.output", "output")
	v.SetDefault("paths.logs", "logs")
	v.SetDefault("paths.history", defaultHistoryPath())
	v.SetDefault("paths.profile", "")

	v.SetEnvPrefix("DOCFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "docflow"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// ValidateLLM checks the fields required to reach the LLM backend. Tool
// commands that never call the LLM skip this.
func (c *Config) ValidateLLM() error {
	if strings.TrimSpace(c.LLM.Credentials) == "" {
		return errors.New("llm credentials are required (set DOCFLOW_LLM_CREDENTIALS or llm.credentials)")
	}
	return nil
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "history.db"
	}
	return filepath.Join(home, ".local", "share", "docflow", "history.db")
}
