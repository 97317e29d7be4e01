package leaderboard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned by KV.Get for keys never written
var ErrNotFound = errors.New("key not found")

// KV is the key-value persistence collaborator behind a Store
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// FileKV stores one file per key under a data directory
type FileKV struct {
	basePath string
}

// NewFileKV creates a file store rooted at basePath; the directory is created on first write
func NewFileKV(basePath string) *FileKV {
	return &FileKV{basePath: basePath}
}

// FilePath returns the path backing key
func (f *FileKV) FilePath(key string) string {
	return filepath.Join(f.basePath, key+".json")
}

// Get reads the value for key
func (f *FileKV) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.FilePath(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Put writes value through a temp file and rename so readers never see a partial write
func (f *FileKV) Put(key string, value []byte) error {
	if err := os.MkdirAll(f.basePath, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	path := f.FilePath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("commit %s: %w", key, err)
	}
	return nil
}

// MemKV is an in-memory KV
type MemKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemKV creates an empty in-memory store
func NewMemKV() *MemKV {
	return &MemKV{data: make(map[string][]byte)}
}

func (m *MemKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemKV) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}
