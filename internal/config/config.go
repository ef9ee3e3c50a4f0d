package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YTDLP    YTDLPConfig    `yaml:"ytdlp"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Chunking ChunkingConfig `yaml:"chunking"`
	Paths    PathsConfig    `yaml:"paths"`
	Logging  LoggingConfig  `yaml:"logging"`
	Watch    WatchConfig    `yaml:"watch"`
}

type YTDLPConfig struct {
	BinaryPath string   `yaml:"binary_path"`
	Languages  []string `yaml:"languages"`
}

type GeminiConfig struct {
	Model       string `yaml:"model"`
	MaxRetries  int    `yaml:"max_retries"`
	BaseDelayMS int    `yaml:"base_delay_ms"`

	// API keys come from the environment or the --api-key flag, never the
	// config file.
	APIKeys []string `yaml:"-"`
}

// BaseDelay is the initial retry backoff delay.
func (g GeminiConfig) BaseDelay() time.Duration {
	return time.Duration(g.BaseDelayMS) * time.Millisecond
}

type ChunkingConfig struct {
	MaxWords int `yaml:"max_words"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Inbox  string `yaml:"inbox"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type WatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads the YAML config at path and overlays environment values.
// An empty path yields a default config. A .env file is honored when present.
func Load(path string) (*Config, error) {
	// Missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if keys := os.Getenv("GEMINI_API_KEY"); keys != "" {
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				cfg.Gemini.APIKeys = append(cfg.Gemini.APIKeys, k)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Chunking.MaxWords < 0 {
		return fmt.Errorf("chunking.max_words must not be negative")
	}
	if c.Gemini.MaxRetries < 0 {
		return fmt.Errorf("gemini.max_retries must not be negative")
	}

	if c.YTDLP.BinaryPath == "" {
		c.YTDLP.BinaryPath = "yt-dlp"
	}
	if len(c.YTDLP.Languages) == 0 {
		c.YTDLP.Languages = []string{"en"}
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.MaxRetries == 0 {
		c.Gemini.MaxRetries = 3
	}
	if c.Gemini.BaseDelayMS == 0 {
		c.Gemini.BaseDelayMS = 1000
	}
	if c.Chunking.MaxWords == 0 {
		c.Chunking.MaxWords = 2500
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}

	return nil
}
