package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"nodekey/internal/domain"
)

const (
	dirMode  = 0o700
	fileMode = 0o600
)

// FileStore stores each record as a file under dir.
type FileStore struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir on fs.
func NewFileStore(fs afero.Fs, dir string) *FileStore {
	return &FileStore{fs: fs, dir: dir}
}

// NewOSFileStore returns a FileStore rooted at dir on the host filesystem.
func NewOSFileStore(dir string) *FileStore {
	return NewFileStore(afero.NewOsFs(), dir)
}

// Dir returns the directory records are kept in.
func (s *FileStore) Dir() string { return s.dir }

// Read returns the content of record name.
func (s *FileStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.fs, path)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrNotFound)
	}
	return b, nil
}

// Write replaces record name with content.
func (s *FileStore) Write(ctx context.Context, name string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(s.dir, dirMode); err != nil {
		return err
	}
	return writeFile(s.fs, path, content, fileMode)
}

// path maps a record name to a file inside dir. Names must be plain file names.
func (s *FileStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid record name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

// Compile-time assertion that FileStore implements domain.BlobStore.
var _ domain.BlobStore = (*FileStore)(nil)
