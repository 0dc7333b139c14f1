package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"textlab/internal/domain"
)

// Config holds all configuration for textlab.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Perplexity   PerplexityConfig   `yaml:"perplexity"`
	EditDistance EditDistanceConfig `yaml:"edit_distance"`
	Morph        MorphConfig        `yaml:"morph"`
	Corpus       CorpusConfig       `yaml:"corpus"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	AllowOrigins   []string      `yaml:"allow_origins"`
}

// PerplexityConfig fixes the evaluator policy.
type PerplexityConfig struct {
	Order       int `yaml:"order"`        // 1 = unigram, 2 = bigram, 3 = trigram
	RoundDigits int `yaml:"round_digits"` // negative disables rounding
}

// EditDistanceConfig bounds the quadratic distance computation.
type EditDistanceConfig struct {
	MaxInputRunes int  `yaml:"max_input_runes"`
	TrimSpace     bool `yaml:"trim_space"`
}

// MorphConfig selects the morphological analysis collaborators.
type MorphConfig struct {
	Stemmer   string          `yaml:"stemmer"`   // "porter", "porter2"
	LemmaPOS  string          `yaml:"lemma_pos"` // n, v, a, r
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Lexicon   string          `yaml:"lexicon"` // WordNet dict dir or imported .db; empty = embedded seed
}

// SegmenterConfig holds subword segmenter configuration.
type SegmenterConfig struct {
	Type      string `yaml:"type"`       // "wordpiece", "sentencepiece"
	VocabPath string `yaml:"vocab_path"` // vocab.txt, tokenizer.json or .model; empty = embedded seed
}

// CorpusConfig filters files read by perplexity --train-glob.
type CorpusConfig struct {
	Excludes []string `yaml:"excludes"`
	MaxBytes int64    `yaml:"max_bytes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":5000",
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   30 * time.Second,
			RequestTimeout: 15 * time.Second,
			AllowOrigins:   []string{"*"},
		},
		Perplexity: PerplexityConfig{
			Order:       2,
			RoundDigits: 4,
		},
		EditDistance: EditDistanceConfig{
			MaxInputRunes: 1000,
			TrimSpace:     true,
		},
		Morph: MorphConfig{
			Stemmer:  "porter",
			LemmaPOS: "n",
			Segmenter: SegmenterConfig{
				Type: "wordpiece",
			},
		},
		Corpus: CorpusConfig{
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/vendor/**"},
			MaxBytes: 10 << 20,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for textlab.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "textlab.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = DataConfigPath(dir)
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv applies environment overrides. PORT replaces the listen port.
func (c *Config) ApplyEnv() {
	port := os.Getenv("PORT")
	if port == "" {
		return
	}
	host, _, err := net.SplitHostPort(c.Server.Addr)
	if err != nil {
		host = ""
	}
	c.Server.Addr = net.JoinHostPort(host, port)
}

// Validate checks values that would otherwise fail at first use.
func (c *Config) Validate() error {
	if _, err := domain.OrderFromInt(c.Perplexity.Order); err != nil {
		return fmt.Errorf("perplexity.order: %w", err)
	}
	if _, err := domain.ParsePartOfSpeech(c.Morph.LemmaPOS); err != nil {
		return fmt.Errorf("morph.lemma_pos: %w", err)
	}
	if c.EditDistance.MaxInputRunes <= 0 {
		return fmt.Errorf("edit_distance.max_input_runes must be positive, got %d", c.EditDistance.MaxInputRunes)
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout must not be negative")
	}
	return nil
}

// DataConfigPath returns the location LoadFromDir falls back to.
func DataConfigPath(dir string) string {
	return filepath.Join(dir, ".textlab", "config.yaml")
}

// LexiconDBPath returns the default location of an imported lexicon database.
func LexiconDBPath(dir string) string {
	return filepath.Join(dir, ".textlab", "lexicon.db")
}

// EnsureDataDir ensures the .textlab directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".textlab"), 0755)
}
