package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements ObjectStorage on a plain directory. It is the
// fallback when no S3-compatible service is configured.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed creating storage directory %s: %w", root, err)
	}
	return &LocalStorage{root: root}, nil
}

func (s *LocalStorage) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var results []ObjectInfo
	err := filepath.Walk(s.root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		key, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return relErr
		}
		key = filepath.ToSlash(key)
		if strings.HasPrefix(key, prefix) {
			results = append(results, ObjectInfo{Key: key, Size: info.Size()})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage list failed: %w", err)
	}
	return results, nil
}

func (s *LocalStorage) GetObject(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("storage get failed: %w", err)
	}
	return data, nil
}

func (s *LocalStorage) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	dest := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed creating directory for %s: %w", dest, err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("storage put failed: %w", err)
	}
	return nil
}

var _ ObjectStorage = (*LocalStorage)(nil)
