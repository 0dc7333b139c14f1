package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Perplexity.Order != 2 {
		t.Errorf("expected Order=2, got %d", cfg.Perplexity.Order)
	}
	if cfg.Perplexity.RoundDigits != 4 {
		t.Errorf("expected RoundDigits=4, got %d", cfg.Perplexity.RoundDigits)
	}
	if cfg.EditDistance.MaxInputRunes != 1000 {
		t.Errorf("expected MaxInputRunes=1000, got %d", cfg.EditDistance.MaxInputRunes)
	}
	if !cfg.EditDistance.TrimSpace {
		t.Error("expected TrimSpace=true")
	}
	if cfg.Morph.LemmaPOS != "n" {
		t.Errorf("expected LemmaPOS=n, got %s", cfg.Morph.LemmaPOS)
	}
	if cfg.Server.Addr != ":5000" {
		t.Errorf("expected Addr=:5000, got %s", cfg.Server.Addr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "textlab.yaml")

	content := `
server:
  request_timeout: 2s
perplexity:
  order: 3
edit_distance:
  trim_space: false
morph:
  stemmer: porter2
  segmenter:
    type: sentencepiece
    vocab_path: /models/sp.model
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.RequestTimeout != 2*time.Second {
		t.Errorf("expected RequestTimeout=2s, got %s", cfg.Server.RequestTimeout)
	}
	if cfg.Perplexity.Order != 3 {
		t.Errorf("expected Order=3, got %d", cfg.Perplexity.Order)
	}
	if cfg.Perplexity.RoundDigits != 4 {
		t.Errorf("expected RoundDigits to keep its default, got %d", cfg.Perplexity.RoundDigits)
	}
	if cfg.EditDistance.TrimSpace {
		t.Error("expected TrimSpace=false")
	}
	if cfg.Morph.Stemmer != "porter2" {
		t.Errorf("expected Stemmer=porter2, got %s", cfg.Morph.Stemmer)
	}
	if cfg.Morph.Segmenter.VocabPath != "/models/sp.model" {
		t.Errorf("expected VocabPath=/models/sp.model, got %s", cfg.Morph.Segmenter.VocabPath)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "textlab.yaml")
	if err := os.WriteFile(configPath, []byte("perplexity: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	if err := EnsureDataDir(tmpDir); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(tmpDir, ".textlab", "config.yaml")

	content := `
edit_distance:
  max_input_runes: 64
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.EditDistance.MaxInputRunes != 64 {
		t.Errorf("expected MaxInputRunes=64, got %d", cfg.EditDistance.MaxInputRunes)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textlab.yaml")
	cfg := DefaultConfig()
	cfg.Server.RequestTimeout = 3 * time.Second
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.RequestTimeout != 3*time.Second {
		t.Errorf("expected RequestTimeout=3s, got %s", loaded.Server.RequestTimeout)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	t.Setenv("PORT", "8080")
	cfg.ApplyEnv()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected Addr=:8080, got %s", cfg.Server.Addr)
	}

	cfg.Server.Addr = "127.0.0.1:5000"
	cfg.ApplyEnv()
	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("expected Addr=127.0.0.1:8080, got %s", cfg.Server.Addr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"order", func(c *Config) { c.Perplexity.Order = 4 }},
		{"lemma pos", func(c *Config) { c.Morph.LemmaPOS = "x" }},
		{"negative max runes", func(c *Config) { c.EditDistance.MaxInputRunes = -1 }},
		{"unbounded max runes", func(c *Config) { c.EditDistance.MaxInputRunes = 0 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLexiconDBPath(t *testing.T) {
	path := LexiconDBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".textlab", "lexicon.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
