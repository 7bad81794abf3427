// Package localfs stores product images and invoice artifacts on the local
// filesystem.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	contracts "github.com/murkotick/storefront-service/internal/app/storefront/contracts"
)

var (
	errOutsideRoot = errors.New("localfs: path escapes root")
	errClosed      = errors.New("localfs: sink already closed")
)

// Store resolves every path below Root.
type Store struct {
	Root string
}

func New(root string) *Store {
	return &Store{Root: root}
}

func (s *Store) resolve(name string) (string, error) {
	clean := filepath.Clean("/" + filepath.ToSlash(name))
	full := filepath.Join(s.Root, clean)
	rel, err := filepath.Rel(s.Root, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%w: %q", errOutsideRoot, name)
	}
	return full, nil
}

// DeleteFile removes path. A file that is already gone is not an error.
func (s *Store) DeleteFile(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Create opens a sink that writes to a temporary file next to key and
// renames it into place on Commit.
func (s *Store) Create(ctx context.Context, key string) (contracts.Sink, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, err
	}
	f, err := os.CreateTemp(filepath.Dir(full), "."+filepath.Base(full)+".*.tmp")
	if err != nil {
		return nil, err
	}
	return &fileSink{f: f, target: full}, nil
}

type fileSink struct {
	mu     sync.Mutex
	f      *os.File
	target string
	closed bool
}

func (s *fileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, errClosed
	}
	return s.f.Write(p)
}

func (s *fileSink) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errClosed
	}
	s.closed = true
	if err := s.f.Sync(); err != nil {
		s.discard()
		return err
	}
	if err := s.f.Close(); err != nil {
		_ = os.Remove(s.f.Name())
		return err
	}
	if err := os.Rename(s.f.Name(), s.target); err != nil {
		_ = os.Remove(s.f.Name())
		return err
	}
	return nil
}

// Abort drops the temporary file. Aborting a committed sink does nothing.
func (s *fileSink) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.discard()
}

func (s *fileSink) discard() error {
	_ = s.f.Close()
	if err := os.Remove(s.f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

var (
	_ contracts.FileStore     = (*Store)(nil)
	_ contracts.ArtifactStore = (*Store)(nil)
)
