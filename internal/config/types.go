package config

import "time"

// DefaultConfigFilename is the default configuration filename.
const DefaultConfigFilename = "blackivy.yaml"

// Backend names a submission backend.
type Backend string

// Supported submission backends.
const (
	BackendNone   Backend = "none"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendS3     Backend = "s3"
	BackendMongo  Backend = "mongo"
	BackendRedis  Backend = "redis"
)

// Config is the runtime configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// StorageConfig selects where finished responses go.
type StorageConfig struct {
	Backend Backend      `yaml:"backend"`
	File    FileConfig   `yaml:"file,omitempty"`
	SQLite  SQLiteConfig `yaml:"sqlite,omitempty"`
	S3      S3Config     `yaml:"s3,omitempty"`
	Mongo   MongoConfig  `yaml:"mongo,omitempty"`
	Redis   RedisConfig  `yaml:"redis,omitempty"`

	// Retries is how often a failed submission is retried.
	Retries int `yaml:"retries,omitempty"`
}

// FileConfig writes one YAML document per response.
type FileConfig struct {
	Dir string `yaml:"dir"`
}

// SQLiteConfig stores responses in a local SQLite database.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// S3Config uploads responses to S3-compatible object storage.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	PathStyle bool   `yaml:"path_style,omitempty"`
}

// MongoConfig inserts responses into a MongoDB collection.
type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection,omitempty"`
}

// RedisConfig stores responses as JSON values with a TTL.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password,omitempty"`
	DB       int           `yaml:"db,omitempty"`
	TTL      time.Duration `yaml:"ttl,omitempty"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// MetricsConfig configures metric output for CLI runs.
type MetricsConfig struct {
	// TextfilePath is where CLI runs write metrics in the node exporter
	// textfile format. Empty disables it.
	TextfilePath string `yaml:"textfile_path,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Verbosity is the logr V level that is still printed.
	Verbosity int `yaml:"verbosity,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
	if c.Storage.File.Dir == "" {
		c.Storage.File.Dir = "responses"
	}
	if c.Storage.SQLite.Path == "" {
		c.Storage.SQLite.Path = "blackivy.db"
	}
	if c.Storage.S3.Prefix == "" {
		c.Storage.S3.Prefix = "responses/"
	}
	if c.Storage.Mongo.Collection == "" {
		c.Storage.Mongo.Collection = "survey_responses"
	}
	if c.Storage.Redis.TTL == 0 {
		c.Storage.Redis.TTL = 30 * 24 * time.Hour
	}
	if c.Storage.Retries == 0 {
		c.Storage.Retries = 3
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
}
