package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvBackend      = "BLACKIVY_STORAGE_BACKEND"
	EnvFileDir      = "BLACKIVY_FILE_DIR"
	EnvSQLitePath   = "BLACKIVY_SQLITE_PATH"
	EnvS3Endpoint   = "BLACKIVY_S3_ENDPOINT"
	EnvS3Region     = "BLACKIVY_S3_REGION"
	EnvS3Bucket     = "BLACKIVY_S3_BUCKET"
	EnvS3AccessKey  = "BLACKIVY_S3_ACCESS_KEY"
	EnvS3SecretKey  = "BLACKIVY_S3_SECRET_KEY"
	EnvMongoURI     = "BLACKIVY_MONGO_URI"
	EnvMongoDB      = "BLACKIVY_MONGO_DATABASE"
	EnvRedisAddr    = "BLACKIVY_REDIS_ADDR"
	EnvRedisPass    = "BLACKIVY_REDIS_PASSWORD"
	EnvRedisTTL     = "BLACKIVY_REDIS_TTL"
	EnvServerAddr   = "BLACKIVY_ADDR"
	EnvMetricsFile  = "BLACKIVY_METRICS_TEXTFILE"
	EnvLogVerbosity = "BLACKIVY_LOG_VERBOSITY"
)

// Load reads path (or the nearest blackivy.yaml when path is empty),
// applies .env and environment overrides, and validates the result.
// A missing default file is not an error.
func Load(path string) (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	var cfg *Config
	switch {
	case path != "":
		c, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		found, err := FindConfigFile()
		if err != nil {
			cfg = &Config{}
			break
		}
		c, err := LoadFile(found)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// LoadFile parses a YAML file without defaults or validation.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parseConfig(data)
}

// LoadFromBytes parses, defaults and validates YAML data.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &cfg, nil
}

// FindConfigFile searches the current directory and its parents for
// blackivy.yaml.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		path := filepath.Join(dir, DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("config file %s not found", DefaultConfigFilename)
}

// Save writes a configuration to a file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv overrides fields from environment variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		EnvFileDir:     &c.Storage.File.Dir,
		EnvSQLitePath:  &c.Storage.SQLite.Path,
		EnvS3Endpoint:  &c.Storage.S3.Endpoint,
		EnvS3Region:    &c.Storage.S3.Region,
		EnvS3Bucket:    &c.Storage.S3.Bucket,
		EnvS3AccessKey: &c.Storage.S3.AccessKey,
		EnvS3SecretKey: &c.Storage.S3.SecretKey,
		EnvMongoURI:    &c.Storage.Mongo.URI,
		EnvMongoDB:     &c.Storage.Mongo.Database,
		EnvRedisAddr:   &c.Storage.Redis.Addr,
		EnvRedisPass:   &c.Storage.Redis.Password,
		EnvServerAddr:  &c.Server.Addr,
		EnvMetricsFile: &c.Metrics.TextfilePath,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvBackend); ok && v != "" {
		c.Storage.Backend = Backend(v)
	}
	if v, ok := lookup(EnvRedisTTL); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRedisTTL, err)
		}
		c.Storage.Redis.TTL = ttl
	}
	if v, ok := lookup(EnvLogVerbosity); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvLogVerbosity, err)
		}
		c.Log.Verbosity = n
	}
	return nil
}
