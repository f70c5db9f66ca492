package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Reference ReferenceConfig `mapstructure:"reference"`
	Firecrawl FirecrawlConfig `mapstructure:"firecrawl"`
	Archive   ArchiveConfig   `mapstructure:"archive"`
	Extract   ExtractConfig   `mapstructure:"extract"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// Mode is the gin mode: debug, release or test.
	Mode string `mapstructure:"mode"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// GeminiConfig selects the model and carries the resolved API key.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// ReferenceConfig controls fetching of the optional reference URL.
type ReferenceConfig struct {
	Fetch bool `mapstructure:"fetch"`
	// Provider is "direct" or "firecrawl".
	Provider string `mapstructure:"provider"`
	MaxChars int    `mapstructure:"max_chars"`
	// Timeout in seconds, used by the direct provider.
	Timeout int `mapstructure:"timeout"`
}

func (r ReferenceConfig) TimeoutDuration() time.Duration {
	return time.Duration(r.Timeout) * time.Second
}

type FirecrawlConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// ArchiveConfig points at the Firebase Storage bucket for exports.
// Archiving is off while Bucket is empty.
type ArchiveConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	Bucket          string `mapstructure:"bucket"`
	Prefix          string `mapstructure:"prefix"`
}

func (a ArchiveConfig) Enabled() bool {
	return a.Bucket != ""
}

// ExtractConfig turns on the optional extraction hardening tiers.
type ExtractConfig struct {
	Repair   bool `mapstructure:"repair"`
	Validate bool `mapstructure:"validate"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads .env, then an optional config.yaml from the given directories
// (default "." and "./config"), with environment variable overrides.
func Load(paths ...string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.Gemini.APIKey = ResolveAPIKey(os.Getenv("API_KEY"), cfg.Gemini.APIKey)

	return &cfg, nil
}

// ResolveAPIKey returns the first non-empty candidate.
func ResolveAPIKey(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")

	v.SetDefault("reference.fetch", false)
	v.SetDefault("reference.provider", "direct")
	v.SetDefault("reference.max_chars", 4000)
	v.SetDefault("reference.timeout", 15)

	v.SetDefault("firecrawl.api_key", "")
	v.SetDefault("firecrawl.base_url", "https://api.firecrawl.dev")

	v.SetDefault("archive.credentials_file", "")
	v.SetDefault("archive.bucket", "")
	v.SetDefault("archive.prefix", "exports")

	v.SetDefault("extract.repair", false)
	v.SetDefault("extract.validate", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
