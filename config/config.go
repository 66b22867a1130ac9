package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every gobayes command
type Config struct {
	Stemmer  string      `yaml:"stemmer"`
	Language string      `yaml:"language"`
	Addr     string      `yaml:"addr"`
	LogLevel string      `yaml:"log_level"`
	Corpus   string      `yaml:"corpus"`
	Tokenize TokenConfig `yaml:"tokenize"`
	Crawl    CrawlConfig `yaml:"crawl"`
}

type TokenConfig struct {
	Punctuation bool `yaml:"punctuation"`
}

type CrawlConfig struct {
	MaxPages    int           `yaml:"max_pages"`
	Concurrency int           `yaml:"concurrency"`
	Timeout     time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Stemmer:  "snowball",
		Language: "english",
		Addr:     ":8080",
		LogLevel: "info",
		Tokenize: TokenConfig{
			Punctuation: true,
		},
		Crawl: CrawlConfig{
			MaxPages:    50,
			Concurrency: 4,
			Timeout:     10 * time.Second,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail later at run time
func (c *Config) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	if c.Crawl.MaxPages < 1 {
		return fmt.Errorf("crawl.max_pages must be at least 1, got %d", c.Crawl.MaxPages)
	}
	if c.Crawl.Concurrency < 1 {
		return fmt.Errorf("crawl.concurrency must be at least 1, got %d", c.Crawl.Concurrency)
	}
	if c.Crawl.Timeout <= 0 {
		return fmt.Errorf("crawl.timeout must be positive, got %s", c.Crawl.Timeout)
	}
	return nil
}
