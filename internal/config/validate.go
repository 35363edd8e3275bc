package config

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrUnknownBackend   = errors.New("unknown storage backend")
	ErrFileDirRequired  = errors.New("storage.file.dir is required")
	ErrSQLitePath       = errors.New("storage.sqlite.path is required")
	ErrS3Bucket         = errors.New("storage.s3.bucket is required")
	ErrS3Endpoint       = errors.New("storage.s3.endpoint is required")
	ErrS3Credentials    = errors.New("storage.s3 access_key and secret_key are required")
	ErrMongoURI         = errors.New("storage.mongo.uri and storage.mongo.database are required")
	ErrRedisAddr        = errors.New("storage.redis.addr is required")
	ErrNegativeRetries  = errors.New("storage.retries must not be negative")
	ErrServerAddr       = errors.New("server.addr is required")
	ErrNegativeLogLevel = errors.New("log.verbosity must not be negative")
)

// Validate checks the configuration for the selected backend.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return fmt.Errorf("storage validation failed: %w", err)
	}
	if c.Server.Addr == "" {
		return ErrServerAddr
	}
	if c.Log.Verbosity < 0 {
		return ErrNegativeLogLevel
	}
	return nil
}

func (c *Config) validateStorage() error {
	s := c.Storage
	if s.Retries < 0 {
		return ErrNegativeRetries
	}

	switch s.Backend {
	case BackendNone:
	case BackendFile:
		if s.File.Dir == "" {
			return ErrFileDirRequired
		}
	case BackendSQLite:
		if s.SQLite.Path == "" {
			return ErrSQLitePath
		}
	case BackendS3:
		if s.S3.Bucket == "" {
			return ErrS3Bucket
		}
		if s.S3.Endpoint == "" {
			return ErrS3Endpoint
		}
		if s.S3.AccessKey == "" || s.S3.SecretKey == "" {
			return ErrS3Credentials
		}
	case BackendMongo:
		if s.Mongo.URI == "" || s.Mongo.Database == "" {
			return ErrMongoURI
		}
	case BackendRedis:
		if s.Redis.Addr == "" {
			return ErrRedisAddr
		}
	default:
		return fmt.Errorf("%w %q: must be one of %v", ErrUnknownBackend, s.Backend, Backends())
	}
	return nil
}

// Backends lists the supported backend names.
func Backends() []Backend {
	return []Backend{BackendNone, BackendFile, BackendSQLite, BackendS3, BackendMongo, BackendRedis}
}
