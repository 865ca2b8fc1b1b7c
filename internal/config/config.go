package config

import (
	"fmt"
	"strings"
)

type Config struct {
	LLM             LLMConfig             `yaml:"llm"`
	ConversationLog ConversationLogConfig `yaml:"conversation_log"`
	Logging         LoggingConfig         `yaml:"logging"`
	Audio           AudioConfig           `yaml:"audio"`
	Whisper         WhisperConfig         `yaml:"whisper"`
	Paths           PathsConfig           `yaml:"paths"`
	Document        DocumentConfig        `yaml:"document"`
}

type LLMConfig struct {
	APIURL              string   `yaml:"api_url"`
	Model               string   `yaml:"model"`
	Temperature         *float64 `yaml:"temperature"`
	MaxTokens           int      `yaml:"max_tokens"`
	TimeoutSeconds      int      `yaml:"timeout_seconds"`
	ProbeTimeoutSeconds int      `yaml:"probe_timeout_seconds"`
	DefaultPrompt       string   `yaml:"default_prompt"`
}

// SamplingTemperature keeps an explicit 0 and falls back to 0.7 when unset.
func (c LLMConfig) SamplingTemperature() float64 {
	if c.Temperature == nil {
		return DefaultTemperature
	}
	return *c.Temperature
}

type ConversationLogConfig struct {
	Dir           string `yaml:"dir"`
	RetentionDays *int   `yaml:"retention_days"`
	Enabled       *bool  `yaml:"enabled"`
	Level         string `yaml:"level"`
}

// Retention keeps an explicit 0 and falls back to 30 days when unset.
func (c ConversationLogConfig) Retention() int {
	if c.RetentionDays == nil {
		return DefaultRetentionDays
	}
	return *c.RetentionDays
}

// IsEnabled treats an unset flag as enabled.
func (c ConversationLogConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type AudioConfig struct {
	Format             string `yaml:"format"`
	SampleRate         int    `yaml:"sample_rate"`
	Channels           int    `yaml:"channels"`
	Bitrate            string `yaml:"bitrate"`
	MaxDurationSeconds int    `yaml:"max_duration_seconds"`
	MaxFileSizeBytes   int64  `yaml:"max_file_size_bytes"`
	FFmpegPath         string `yaml:"ffmpeg_path"`
	FFprobePath        string `yaml:"ffprobe_path"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type PathsConfig struct {
	Temp   string `yaml:"temp"`
	Output string `yaml:"output"`
	Inbox  string `yaml:"inbox"`
}

type DocumentConfig struct {
	Font              string `yaml:"font"`
	TitleSize         int    `yaml:"title_size"`
	HeadingSize       int    `yaml:"heading_size"`
	BodySize          int    `yaml:"body_size"`
	IncludeTranscript *bool  `yaml:"include_transcript"`
}

// WantsTranscript treats an unset flag as true.
func (c DocumentConfig) WantsTranscript() bool {
	return c.IncludeTranscript == nil || *c.IncludeTranscript
}

// SetDefaults fills every unset field with its documented default.
func (c *Config) SetDefaults() {
	if c.LLM.APIURL == "" {
		c.LLM.APIURL = DefaultAPIURL
	}
	if c.LLM.Model == "" {
		c.LLM.Model = DefaultModel
	}
	if c.LLM.Temperature == nil {
		temperature := DefaultTemperature
		c.LLM.Temperature = &temperature
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 4000
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = 3600
	}
	if c.LLM.ProbeTimeoutSeconds == 0 {
		c.LLM.ProbeTimeoutSeconds = 5
	}
	if c.LLM.DefaultPrompt == "" {
		c.LLM.DefaultPrompt = DefaultPrompt
	}

	if c.ConversationLog.Dir == "" {
		c.ConversationLog.Dir = "logs"
	}
	if c.ConversationLog.RetentionDays == nil {
		days := DefaultRetentionDays
		c.ConversationLog.RetentionDays = &days
	}
	if c.ConversationLog.Enabled == nil {
		enabled := true
		c.ConversationLog.Enabled = &enabled
	}
	if c.ConversationLog.Level == "" {
		c.ConversationLog.Level = "info"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 10
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 5
	}
	if c.Logging.MaxAgeDays == 0 {
		c.Logging.MaxAgeDays = 30
	}

	if c.Audio.Format == "" {
		c.Audio.Format = "wav"
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 16000
	}
	if c.Audio.Channels == 0 {
		c.Audio.Channels = 1
	}
	if c.Audio.Bitrate == "" {
		c.Audio.Bitrate = "128k"
	}
	if c.Audio.MaxDurationSeconds == 0 {
		c.Audio.MaxDurationSeconds = 2 * 60 * 60
	}
	if c.Audio.MaxFileSizeBytes == 0 {
		c.Audio.MaxFileSizeBytes = 1 << 30
	}
	if c.Audio.FFmpegPath == "" {
		c.Audio.FFmpegPath = "ffmpeg"
	}
	if c.Audio.FFprobePath == "" {
		c.Audio.FFprobePath = "ffprobe"
	}

	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-medium.bin"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "temp"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "inbox"
	}

	if c.Document.Font == "" {
		c.Document.Font = "微软雅黑"
	}
	if c.Document.TitleSize == 0 {
		c.Document.TitleSize = 18
	}
	if c.Document.HeadingSize == 0 {
		c.Document.HeadingSize = 14
	}
	if c.Document.BodySize == 0 {
		c.Document.BodySize = 12
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.LLM.APIURL) == "" {
		return fmt.Errorf("llm.api_url is required")
	}
	if !strings.HasPrefix(c.LLM.APIURL, "http://") && !strings.HasPrefix(c.LLM.APIURL, "https://") {
		return fmt.Errorf("llm.api_url must be an http(s) URL: %s", c.LLM.APIURL)
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return fmt.Errorf("llm.model is required")
	}
	if t := c.LLM.SamplingTemperature(); t < 0 || t > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2: %v", t)
	}
	if c.LLM.TimeoutSeconds < 0 || c.LLM.ProbeTimeoutSeconds < 0 {
		return fmt.Errorf("llm timeouts cannot be negative")
	}
	if c.ConversationLog.Retention() < 0 {
		return fmt.Errorf("conversation_log.retention_days cannot be negative")
	}
	if c.Audio.Channels < 0 || c.Audio.SampleRate < 0 {
		return fmt.Errorf("audio.sample_rate and audio.channels cannot be negative")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	return nil
}
