package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Granicus    GranicusConfig    `yaml:"granicus"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Limits      LimitsConfig      `yaml:"limits"`
	Paths       PathsConfig       `yaml:"paths"`
	Retention   RetentionConfig   `yaml:"retention"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GranicusConfig struct {
	BaseURL     string `yaml:"base_url"`
	ViewID      string `yaml:"view_id"`
	FirstClipID int    `yaml:"first_clip_id"`
}

type OpenAIConfig struct {
	// APIKey is populated from the OPENAI_API_KEY environment variable,
	// never from the config file.
	APIKey                   string `yaml:"-"`
	TranscribeModel          string `yaml:"transcribe_model"`
	SummaryModel             string `yaml:"summary_model"`
	TopicModel               string `yaml:"topic_model"`
	TranscribeTimeoutSeconds int    `yaml:"transcribe_timeout_seconds"`
}

type LimitsConfig struct {
	// SoftCeilingMB is the upload size the orchestrator aims for, with
	// headroom below the service limit. HardCeilingMB is the service's
	// actual maximum accepted upload size.
	SoftCeilingMB float64 `yaml:"soft_ceiling_mb"`
	HardCeilingMB float64 `yaml:"hard_ceiling_mb"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Inbox  string `yaml:"inbox"`
}

type RetentionConfig struct {
	KeepAudio bool `yaml:"keep_audio"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a yaml config file, applies defaults and pulls the API key from
// the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load but tolerates a missing file: defaults and
// environment values alone then make up the configuration.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		return cfg, err
	}

	cfg = &Config{}
	cfg.Paths.Output = "meetings"
	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Granicus.BaseURL == "" {
		c.Granicus.BaseURL = "https://lfucg.granicus.com"
	}
	if c.Granicus.ViewID == "" {
		c.Granicus.ViewID = "14"
	}
	if c.Granicus.FirstClipID == 0 {
		c.Granicus.FirstClipID = 6669
	}
	if c.OpenAI.TranscribeModel == "" {
		c.OpenAI.TranscribeModel = "whisper-1"
	}
	if c.OpenAI.SummaryModel == "" {
		c.OpenAI.SummaryModel = "gpt-4o"
	}
	if c.OpenAI.TopicModel == "" {
		c.OpenAI.TopicModel = "gpt-4o-mini"
	}
	if c.OpenAI.TranscribeTimeoutSeconds == 0 {
		c.OpenAI.TranscribeTimeoutSeconds = 600
	}
	if c.Limits.SoftCeilingMB == 0 {
		c.Limits.SoftCeilingMB = 24
	}
	if c.Limits.HardCeilingMB == 0 {
		c.Limits.HardCeilingMB = 25
	}
	if c.Limits.SoftCeilingMB > c.Limits.HardCeilingMB {
		return fmt.Errorf("limits.soft_ceiling_mb must not exceed limits.hard_ceiling_mb")
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "inbox"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}
