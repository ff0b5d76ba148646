// Package config loads runtime settings from .env, an optional YAML file
// and the process environment, in that order of precedence (lowest first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/blogem/opsledger/blobstore"
)

// DefaultPath is read when no config file is given
const DefaultPath = "opsledger.yaml"

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	Blob     BlobConfig     `yaml:"blob"`
	Cache    CacheConfig    `yaml:"cache"`
}

type ServerConfig struct {
	Port     string `yaml:"port"`
	UseHTTPS bool   `yaml:"use_https"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

// AuthConfig holds the OIDC login settings and the API token secret
type AuthConfig struct {
	Domain       string        `yaml:"domain"`
	ClientID     string        `yaml:"client_id"`
	ClientSecret string        `yaml:"client_secret"`
	CallbackURL  string        `yaml:"callback_url"`
	JWTSecret    string        `yaml:"jwt_secret"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
}

// OIDCEnabled reports whether browser login is configured
func (a AuthConfig) OIDCEnabled() bool {
	return a.Domain != ""
}

type BlobConfig struct {
	Driver string             `yaml:"driver"`
	S3     blobstore.S3Config `yaml:"s3"`
}

// Options converts the settings for blobstore.Open
func (b BlobConfig) Options() blobstore.Options {
	return blobstore.Options{Driver: b.Driver, S3: b.S3}
}

type CacheConfig struct {
	Size int           `yaml:"size"`
	TTL  time.Duration `yaml:"ttl"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Path: "opsledger.db"},
		Log:      LogConfig{Level: "info", Format: "json"},
		Auth:     AuthConfig{TokenTTL: 12 * time.Hour},
		Blob:     BlobConfig{Driver: string(blobstore.DriverMemory)},
		Cache:    CacheConfig{Size: 1024, TTL: 30 * time.Second},
	}
}

// Load builds the configuration. A missing .env or a missing default config
// file is not an error; an explicitly named file must exist.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setString("PORT", &cfg.Server.Port)
	setString("DATABASE_PATH", &cfg.Database.Path)
	setString("LOG_LEVEL", &cfg.Log.Level)
	setString("LOG_FORMAT", &cfg.Log.Format)
	setString("JWT_SECRET", &cfg.Auth.JWTSecret)
	setString("AUTH0_DOMAIN", &cfg.Auth.Domain)
	setString("AUTH0_CLIENT_ID", &cfg.Auth.ClientID)
	setString("AUTH0_CLIENT_SECRET", &cfg.Auth.ClientSecret)
	setString("AUTH0_CALLBACK_URL", &cfg.Auth.CallbackURL)
	setString("BLOB_DRIVER", &cfg.Blob.Driver)
	setString("BLOB_S3_BUCKET", &cfg.Blob.S3.Bucket)
	setString("BLOB_S3_REGION", &cfg.Blob.S3.Region)
	setString("BLOB_S3_ENDPOINT", &cfg.Blob.S3.Endpoint)

	if v := os.Getenv("USE_HTTPS"); v != "" {
		cfg.Server.UseHTTPS = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("BLOB_S3_PATH_STYLE"); v != "" {
		cfg.Blob.S3.PathStyle = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_SIZE %q: %w", v, err)
		}
		cfg.Cache.Size = n
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CACHE_TTL %q: %w", v, err)
		}
		cfg.Cache.TTL = d
	}
	if v := os.Getenv("JWT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid JWT_TTL %q: %w", v, err)
		}
		cfg.Auth.TokenTTL = d
	}
	return nil
}

// Validate checks settings that would otherwise fail at first use
func (c Config) Validate() error {
	var problems []string

	if c.Auth.OIDCEnabled() && c.Auth.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET is required when login is enabled")
	}
	switch blobstore.Driver(c.Blob.Driver) {
	case blobstore.DriverMemory:
	case blobstore.DriverS3:
		if c.Blob.S3.Bucket == "" {
			problems = append(problems, "BLOB_S3_BUCKET is required for the s3 blob driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown blob driver %q", c.Blob.Driver))
	}
	if c.Cache.Size <= 0 {
		problems = append(problems, "cache size must be positive")
	}
	if c.Cache.TTL <= 0 {
		problems = append(problems, "cache ttl must be positive")
	}
	if c.Auth.TokenTTL <= 0 {
		problems = append(problems, "token ttl must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
