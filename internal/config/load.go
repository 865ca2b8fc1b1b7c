package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at path, applies defaults, then MINUTES_* env overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg back to path as YAML.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigPath
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(c *Config) {
	setString(&c.LLM.APIURL, "MINUTES_LLM_API_URL")
	setString(&c.LLM.Model, "MINUTES_LLM_MODEL")
	setInt(&c.LLM.TimeoutSeconds, "MINUTES_LLM_TIMEOUT_SECONDS")
	setString(&c.ConversationLog.Dir, "MINUTES_LOG_DIR")
	setString(&c.ConversationLog.Level, "MINUTES_LOG_LEVEL")
	setIntPtr(&c.ConversationLog.RetentionDays, "MINUTES_LOG_RETENTION_DAYS")
	setBool(&c.ConversationLog.Enabled, "MINUTES_LOG_ENABLED")
	setString(&c.Paths.Temp, "MINUTES_TEMP_DIR")
	setString(&c.Whisper.BinaryPath, "MINUTES_WHISPER_BINARY")
	setString(&c.Whisper.ModelPath, "MINUTES_WHISPER_MODEL")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

func setIntPtr(dst **int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = &n
		}
	}
}

func setBool(dst **bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*dst = &b
		}
	}
}
