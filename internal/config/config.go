package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Export      ExportConfig      `yaml:"export"`
}

type SummarizerConfig struct {
	Provider string `yaml:"provider"`
	Language string `yaml:"language"`
	Style    string `yaml:"style"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type OpenAIConfig struct {
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	TopP        float32 `yaml:"top_p"`
	MaxTokens   int     `yaml:"max_tokens"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
	Database string `yaml:"database"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
	Stdout *bool  `yaml:"stdout"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ExportConfig struct {
	Formats []string `yaml:"formats"`
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var exportFormats = map[string]bool{"markdown": true, "html": true, "docx": true}

// Load reads a YAML config file, applies environment overrides and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// Default returns a validated config with every default filled in, used when
// no config file is given.
func Default() *Config {
	var cfg Config
	cfg.applyEnv()
	cfg.setDefaults()
	return &cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("RECAP_GEMINI_API_KEYS"); v != "" {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		c.Gemini.APIKeys = keys
	}
	if v := os.Getenv("RECAP_OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("RECAP_OPENAI_BASE_URL"); v != "" {
		c.OpenAI.BaseURL = v
	}
	if v := os.Getenv("RECAP_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) Validate() error {
	c.setDefaults()

	switch c.Summarizer.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("summarizer.provider must be %q or %q, got %q", ProviderGemini, ProviderOpenAI, c.Summarizer.Provider)
	}
	for _, f := range c.Export.Formats {
		if !exportFormats[f] {
			return fmt.Errorf("export.formats: unknown format %q", f)
		}
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}
	if c.OpenAI.MaxTokens < 0 {
		return fmt.Errorf("openai.max_tokens must not be negative")
	}
	return nil
}

// StdoutEnabled reports whether logs go to stdout. Defaults to true.
func (l LoggingConfig) StdoutEnabled() bool {
	return l.Stdout == nil || *l.Stdout
}

func (c *Config) setDefaults() {
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = ProviderGemini
	}
	c.Summarizer.Provider = strings.ToLower(c.Summarizer.Provider)
	if c.Summarizer.Language == "" {
		c.Summarizer.Language = "en"
	}
	if c.Summarizer.Style == "" {
		c.Summarizer.Style = "detailed"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.deepseek.com"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "deepseek-chat"
	}
	if c.OpenAI.Temperature == 0 {
		c.OpenAI.Temperature = 1.0
	}
	if c.OpenAI.TopP == 0 {
		c.OpenAI.TopP = 1.0
	}
	if c.OpenAI.MaxTokens == 0 {
		c.OpenAI.MaxTokens = 4096
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Paths.Database == "" {
		c.Paths.Database = "data/recap.sqlite"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if len(c.Export.Formats) == 0 {
		c.Export.Formats = []string{"markdown"}
	}
}
