package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/blackivy/onboarding/internal/config"
	"github.com/blackivy/onboarding/internal/survey"
	"github.com/blackivy/onboarding/internal/util/retry"
)

// File writes each response to <dir>/<id>.yaml.
type File struct {
	dir string
}

// NewFile creates dir if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create response directory: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(id string) string {
	return filepath.Join(f.dir, id+".yaml")
}

func (f *File) Submit(_ context.Context, resp survey.Response) (string, error) {
	if err := validate(resp); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(resp)
	if err != nil {
		return "", retry.Fatal(fmt.Errorf("failed to marshal response: %w", err))
	}

	// Write to a temp file first so readers never see half a response.
	tmp := f.path(resp.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write response: %w", err)
	}
	if err := os.Rename(tmp, f.path(resp.ID)); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to write response: %w", err)
	}
	return resp.ID, nil
}

// Load reads a stored response back.
func (f *File) Load(id string) (survey.Response, error) {
	var resp survey.Response
	data, err := os.ReadFile(f.path(id))
	if err != nil {
		return resp, fmt.Errorf("failed to read response %s: %w", id, err)
	}
	if err := yaml.Unmarshal(data, &resp); err != nil {
		return resp, fmt.Errorf("failed to parse response %s: %w", id, err)
	}
	return resp, nil
}

// List returns the IDs of stored responses, sorted.
func (f *File) List() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *File) Name() string { return string(config.BackendFile) }

func (f *File) Close(context.Context) error { return nil }
