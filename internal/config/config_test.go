package config

import (
	"os"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "negative max words",
			config: Config{
				Chunking: ChunkingConfig{MaxWords: -1},
			},
			wantErr: true,
		},
		{
			name: "negative max retries",
			config: Config{
				Gemini: GeminiConfig{MaxRetries: -1},
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

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.YTDLP.BinaryPath != "yt-dlp" {
		t.Errorf("BinaryPath = %v, want yt-dlp", cfg.YTDLP.BinaryPath)
	}
	if len(cfg.YTDLP.Languages) != 1 || cfg.YTDLP.Languages[0] != "en" {
		t.Errorf("Languages = %v, want [en]", cfg.YTDLP.Languages)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Gemini.MaxRetries != 3 {
		t.Errorf("MaxRetries = %v, want 3", cfg.Gemini.MaxRetries)
	}
	if cfg.Gemini.BaseDelay() != time.Second {
		t.Errorf("BaseDelay() = %v, want 1s", cfg.Gemini.BaseDelay())
	}
	if cfg.Chunking.MaxWords != 2500 {
		t.Errorf("MaxWords = %v, want 2500", cfg.Chunking.MaxWords)
	}
	if cfg.Paths.Output != "data/output" {
		t.Errorf("Output = %v, want data/output", cfg.Paths.Output)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
ytdlp:
  binary_path: "/usr/local/bin/yt-dlp"
  languages: ["en", "es"]

gemini:
  model: "gemini-2.5-pro"
  max_retries: 5
  base_delay_ms: 500

chunking:
  max_words: 1200

paths:
  output: "out"

logging:
  level: "debug"
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

	if cfg.YTDLP.BinaryPath != "/usr/local/bin/yt-dlp" {
		t.Errorf("BinaryPath = %v", cfg.YTDLP.BinaryPath)
	}
	if len(cfg.YTDLP.Languages) != 2 {
		t.Errorf("Languages = %v, want 2 entries", cfg.YTDLP.Languages)
	}
	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %v", cfg.Gemini.Model)
	}
	if cfg.Gemini.BaseDelay() != 500*time.Millisecond {
		t.Errorf("BaseDelay() = %v, want 500ms", cfg.Gemini.BaseDelay())
	}
	if cfg.Chunking.MaxWords != 1200 {
		t.Errorf("MaxWords = %v, want 1200", cfg.Chunking.MaxWords)
	}
	// Unset fields still get defaults
	if cfg.Paths.Inbox != "data/inbox" {
		t.Errorf("Inbox = %v, want default data/inbox", cfg.Paths.Inbox)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadAPIKeysFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key-one, key-two,")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Gemini.APIKeys) != 2 {
		t.Fatalf("APIKeys = %v, want 2 keys", cfg.Gemini.APIKeys)
	}
	if cfg.Gemini.APIKeys[0] != "key-one" || cfg.Gemini.APIKeys[1] != "key-two" {
		t.Errorf("APIKeys = %v", cfg.Gemini.APIKeys)
	}
}
