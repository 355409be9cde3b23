// file: internals/datastore/datastore.go
package datastore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Store persists one collection as a single pretty-printed JSON array file.
// All access goes through a per-store mutex, so a read-modify-write done via
// Update is atomic with respect to other callers of the same store.
type Store[T any] struct {
	path string
	mu   sync.Mutex
}

func New[T any](dir, filename string) *Store[T] {
	return &Store[T]{path: filepath.Join(dir, filename)}
}

// Path returns the location of the backing file.
func (s *Store[T]) Path() string { return s.path }

// Read returns every record in the collection. A missing or empty backing
// file is treated as "no data yet": the file is initialized to an empty
// array. Malformed JSON is surfaced as an error, since it means the file on
// disk is corrupt.
func (s *Store[T]) Read() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Write overwrites the collection with items.
func (s *Store[T]) Write(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(items)
}

// Update runs fn on the current records under the store lock and persists
// whatever slice fn returns. If fn fails nothing is written.
func (s *Store[T]) Update(fn func(items []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.read()
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return s.write(next)
}

func (s *Store[T]) read() ([]T, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := s.write(nil); err != nil {
				return nil, err
			}
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	clean := bytes.TrimSpace(bytes.TrimPrefix(raw, bom))
	if len(clean) == 0 {
		if err := s.write(nil); err != nil {
			return nil, err
		}
		return []T{}, nil
	}

	var items []T
	if err := sonic.Unmarshal(clean, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return items, nil
}

func (s *Store[T]) write(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := sonic.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	// Temp file + rename so readers never observe a partially written array.
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
