package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Muneeb10/AK-Fashion/internal/infrastructure/logger"
)

// URLPrefix is the public path under which stored files are served. The
// API hands out these relative paths; callers prefix the deployment's
// base URL themselves.
const URLPrefix = "/uploads"

// LocalStore writes uploaded blobs to a directory on disk.
type LocalStore struct {
	dir    string
	logger *logger.Logger
}

func NewLocalStore(dir string, logger *logger.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir, logger: logger}, nil
}

// Save stores the content under a collision-free name and returns the
// public /uploads path.
func (s *LocalStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	stored := uuid.New().String() + "-" + sanitize(filepath.Base(filename))

	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return URLPrefix + "/" + stored, nil
}

// Remove deletes a previously stored blob by its public path. Missing
// files are not an error.
func (s *LocalStore) Remove(ctx context.Context, path string) error {
	full := filepath.Join(s.dir, filepath.Base(path))

	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("File not found for deletion", "path", full)
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// Dir returns the backing directory, used to mount the static file server.
func (s *LocalStore) Dir() string {
	return s.dir
}

func sanitize(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return -1
		}
	}, name)
}
