package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/blackivy/onboarding/internal/config"
	"github.com/blackivy/onboarding/internal/platform/s3"
	"github.com/blackivy/onboarding/internal/survey"
	"github.com/blackivy/onboarding/internal/util/retry"
)

// S3 uploads each response as a JSON object.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3 connects to the bucket in cfg, creating it if it does not exist.
func NewS3(ctx context.Context, cfg config.S3Config) (*S3, error) {
	client, err := s3.NewClient(ctx, s3.Options{
		Endpoint:  cfg.Endpoint,
		Region:    cfg.Region,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		PathStyle: cfg.PathStyle,
	})
	if err != nil {
		return nil, err
	}
	if err := client.EnsureBucket(ctx, cfg.Bucket); err != nil {
		return nil, err
	}
	return &S3{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// ObjectKey returns the key resp is stored under: <prefix>/YYYY/MM/DD/<id>.json.
func (s *S3) ObjectKey(resp survey.Response) string {
	return path.Join(s.prefix, resp.CompletedAt.UTC().Format("2006/01/02"), resp.ID+".json")
}

func (s *S3) Submit(ctx context.Context, resp survey.Response) (string, error) {
	if err := validate(resp); err != nil {
		return "", err
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return "", retry.Fatal(fmt.Errorf("failed to marshal response: %w", err))
	}
	if err := s.client.PutObject(ctx, s.bucket, s.ObjectKey(resp), "application/json", data); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// List returns the keys of archived responses.
func (s *S3) List(ctx context.Context) ([]string, error) {
	return s.client.ListObjects(ctx, s.bucket, s.prefix)
}

func (s *S3) Name() string { return string(config.BackendS3) }

func (s *S3) Close(context.Context) error { return nil }
