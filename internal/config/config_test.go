package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "responses", cfg.Storage.File.Dir)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 3, cfg.Storage.Retries)
	assert.Equal(t, 30*24*time.Hour, cfg.Storage.Redis.TTL)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromBytes(t *testing.T) {
	t.Parallel()

	content := `
storage:
  backend: redis
  redis:
    addr: localhost:6379
    ttl: 48h
server:
  addr: 127.0.0.1:9000
log:
  verbosity: 2
`
	cfg, err := LoadFromBytes([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 48*time.Hour, cfg.Storage.Redis.TTL)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Log.Verbosity)
}

func TestLoadFromBytes_InvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadFromBytes([]byte("storage: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "default is valid", mutate: func(*Config) {}},
		{name: "none backend", mutate: func(c *Config) { c.Storage.Backend = BackendNone }},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Storage.Backend = "postgres" },
			wantErr: ErrUnknownBackend,
		},
		{
			name:    "s3 without bucket",
			mutate:  func(c *Config) { c.Storage.Backend = BackendS3 },
			wantErr: ErrS3Bucket,
		},
		{
			name: "s3 without credentials",
			mutate: func(c *Config) {
				c.Storage.Backend = BackendS3
				c.Storage.S3.Bucket = "surveys"
				c.Storage.S3.Endpoint = "https://fsn1.your-objectstorage.com"
			},
			wantErr: ErrS3Credentials,
		},
		{
			name: "s3 complete",
			mutate: func(c *Config) {
				c.Storage.Backend = BackendS3
				c.Storage.S3 = S3Config{Bucket: "surveys", Endpoint: "https://s3.example.com", AccessKey: "a", SecretKey: "b"}
			},
		},
		{
			name:    "mongo without uri",
			mutate:  func(c *Config) { c.Storage.Backend = BackendMongo },
			wantErr: ErrMongoURI,
		},
		{
			name:    "redis without addr",
			mutate:  func(c *Config) { c.Storage.Backend = BackendRedis },
			wantErr: ErrRedisAddr,
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.Storage.Retries = -1 },
			wantErr: ErrNegativeRetries,
		},
		{
			name:    "empty server addr",
			mutate:  func(c *Config) { c.Server.Addr = "" },
			wantErr: ErrServerAddr,
		},
		{
			name:    "negative verbosity",
			mutate:  func(c *Config) { c.Log.Verbosity = -1 },
			wantErr: ErrNegativeLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvBackend:      "s3",
		EnvS3Bucket:     "answers",
		EnvS3Endpoint:   "https://s3.example.com",
		EnvS3AccessKey:  "key",
		EnvS3SecretKey:  "secret",
		EnvRedisTTL:     "1h",
		EnvLogVerbosity: "3",
		EnvServerAddr:   ":9999",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := &Config{}
	require.NoError(t, cfg.applyEnv(lookup))
	cfg.applyDefaults()

	assert.Equal(t, BackendS3, cfg.Storage.Backend)
	assert.Equal(t, "answers", cfg.Storage.S3.Bucket)
	assert.Equal(t, time.Hour, cfg.Storage.Redis.TTL)
	assert.Equal(t, 3, cfg.Log.Verbosity)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestApplyEnv_Invalid(t *testing.T) {
	t.Parallel()

	for _, key := range []string{EnvRedisTTL, EnvLogVerbosity} {
		lookup := func(k string) (string, bool) {
			if k == key {
				return "not-a-number", true
			}
			return "", false
		}
		cfg := &Config{}
		assert.Error(t, cfg.applyEnv(lookup), key)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), DefaultConfigFilename)
	cfg := Default()
	cfg.Storage.Backend = BackendSQLite
	cfg.Storage.SQLite.Path = "/var/lib/blackivy/answers.db"

	require.NoError(t, Save(cfg, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, loaded.Storage.Backend)
	assert.Equal(t, "/var/lib/blackivy/answers.db", loaded.Storage.SQLite.Path)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: none\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendNone, cfg.Storage.Backend)
}
