package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"opentdb"
)

// Config is the user-level CLI configuration.
type Config struct {
	// BaseURL overrides the API base URL; empty means the default.
	BaseURL string `yaml:"base_url,omitempty"`

	// Encoding is the encode parameter code ("", urlLegacy, url3986, base64).
	Encoding string `yaml:"encoding"`

	// DefaultAmount is the amount of questions fetched when --amount is not
	// given.
	DefaultAmount int `yaml:"default_amount"`

	// UseSessionToken controls whether a session token is fetched and sent
	// with requests.
	UseSessionToken bool `yaml:"use_session_token"`

	// TimeoutSeconds bounds each HTTP request; 0 means no timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Encoding:        string(opentdb.EncodingHTML),
		DefaultAmount:   10,
		UseSessionToken: true,
		TimeoutSeconds:  20,
	}
}

// EncodingType parses the configured encoding code.
func (c Config) EncodingType() (opentdb.EncodingType, error) {
	return opentdb.ParseEncodingType(c.Encoding)
}

// Store loads and saves config.
type Store interface {
	Load(ctx context.Context) (Config, error)
	Save(ctx context.Context, cfg Config) error
}

// FileStore is a filesystem-backed YAML config store.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load(ctx context.Context) (Config, error) {
	if err := ctx.Err(); err != nil {
		return Config{}, err
	}

	b, err := os.ReadFile(s.Path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", s.Path, err)
	}
	if cfg.DefaultAmount < 0 {
		return Config{}, fmt.Errorf("config %s: default_amount must not be negative", s.Path)
	}
	if _, err := cfg.EncodingType(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", s.Path, err)
	}
	return cfg, nil
}

func (s *FileStore) Save(ctx context.Context, cfg Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(s.Path, b, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", s.Path, err)
	}
	return nil
}
