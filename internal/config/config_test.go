package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	negative := -1
	hot := 2.5
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				LLM:   LLMConfig{APIURL: "http://127.0.0.1:11434/v1/chat/completions", Model: "qwen2.5:7b"},
				Paths: PathsConfig{Output: "output"},
			},
			wantErr: false,
		},
		{
			name: "missing api url",
			config: Config{
				LLM:   LLMConfig{Model: "qwen2.5:7b"},
				Paths: PathsConfig{Output: "output"},
			},
			wantErr: true,
		},
		{
			name: "non http api url",
			config: Config{
				LLM:   LLMConfig{APIURL: "127.0.0.1:11434", Model: "qwen2.5:7b"},
				Paths: PathsConfig{Output: "output"},
			},
			wantErr: true,
		},
		{
			name: "negative retention",
			config: Config{
				LLM:             LLMConfig{APIURL: "http://localhost", Model: "m"},
				ConversationLog: ConversationLogConfig{RetentionDays: &negative},
				Paths:           PathsConfig{Output: "output"},
			},
			wantErr: true,
		},
		{
			name: "temperature out of range",
			config: Config{
				LLM:   LLMConfig{APIURL: "http://localhost", Model: "m", Temperature: &hot},
				Paths: PathsConfig{Output: "output"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	if cfg.LLM.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %v, want %v", cfg.LLM.APIURL, DefaultAPIURL)
	}
	if cfg.LLM.TimeoutSeconds != 3600 {
		t.Errorf("TimeoutSeconds = %v, want 3600", cfg.LLM.TimeoutSeconds)
	}
	if cfg.LLM.MaxTokens != 4000 || cfg.LLM.SamplingTemperature() != 0.7 {
		t.Errorf("MaxTokens/Temperature = %v/%v", cfg.LLM.MaxTokens, cfg.LLM.SamplingTemperature())
	}
	if cfg.ConversationLog.Dir != "logs" || cfg.ConversationLog.Retention() != 30 {
		t.Errorf("ConversationLog = %+v", cfg.ConversationLog)
	}
	if !cfg.ConversationLog.IsEnabled() {
		t.Error("conversation logging should default to enabled")
	}
	if !cfg.Document.WantsTranscript() {
		t.Error("transcript should default to included")
	}

	for _, slot := range []string{"{meeting_info}", "{transcription}", "{meeting_time}", "{meeting_location}",
		"{host}", "{participants}", "{topics}", "{content}", "{decisions}", "{actions}"} {
		if !strings.Contains(cfg.LLM.DefaultPrompt, slot) {
			t.Errorf("default prompt missing slot %s", slot)
		}
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
llm:
  api_url: "http://192.168.1.10:11434/v1/chat/completions"
  model: "qwen2.5:14b"

conversation_log:
  dir: "audit"
  retention_days: 7
  enabled: false

whisper:
  model_path: "models/test.bin"
  language: "zh"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.LLM.Model != "qwen2.5:14b" {
		t.Errorf("Model = %v, want %v", cfg.LLM.Model, "qwen2.5:14b")
	}
	if cfg.ConversationLog.Retention() != 7 {
		t.Errorf("RetentionDays = %v, want 7", cfg.ConversationLog.Retention())
	}
	if cfg.ConversationLog.IsEnabled() {
		t.Error("conversation logging should be disabled")
	}
	if cfg.Whisper.Language != "zh" {
		t.Errorf("Language = %v, want zh", cfg.Whisper.Language)
	}
	// Untouched sections still get defaults.
	if cfg.Audio.SampleRate != 16000 {
		t.Errorf("SampleRate = %v, want 16000", cfg.Audio.SampleRate)
	}
}

func TestLoadKeepsExplicitZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
llm:
  temperature: 0
conversation_log:
  retention_days: 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.ConversationLog.Retention(); got != 0 {
		t.Errorf("Retention() = %v, want 0", got)
	}
	if got := cfg.LLM.SamplingTemperature(); got != 0 {
		t.Errorf("SamplingTemperature() = %v, want 0", got)
	}

	// Saving and reloading keeps the zeros.
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reloaded.ConversationLog.Retention() != 0 || reloaded.LLM.SamplingTemperature() != 0 {
		t.Errorf("reloaded = %v/%v, want 0/0", reloaded.ConversationLog.Retention(), reloaded.LLM.SamplingTemperature())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM.Model != DefaultModel {
		t.Errorf("Model = %v, want %v", cfg.LLM.Model, DefaultModel)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("llm: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should return error for malformed file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MINUTES_LLM_MODEL", "llama3:8b")
	t.Setenv("MINUTES_LOG_RETENTION_DAYS", "14")
	t.Setenv("MINUTES_LOG_ENABLED", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM.Model != "llama3:8b" {
		t.Errorf("Model = %v, want llama3:8b", cfg.LLM.Model)
	}
	if cfg.ConversationLog.Retention() != 14 {
		t.Errorf("RetentionDays = %v, want 14", cfg.ConversationLog.Retention())
	}
	if cfg.ConversationLog.IsEnabled() {
		t.Error("MINUTES_LOG_ENABLED=false should disable logging")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{}
	cfg.SetDefaults()
	cfg.LLM.Model = "qwen2.5:32b"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.LLM.Model != "qwen2.5:32b" {
		t.Errorf("Model = %v, want qwen2.5:32b", loaded.LLM.Model)
	}
	if loaded.LLM.DefaultPrompt != DefaultPrompt {
		t.Error("default prompt should survive a save")
	}
}
