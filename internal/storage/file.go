package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend stores each key as <dir>/<key>.json. The directory is created
// on first write, not at construction, so a read-only deployment never
// touches disk.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileBackend) Read(ctx context.Context, key string) (json.RawMessage, error) {
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.path(key), err)
	}
	return json.RawMessage(b), nil
}

func (f *FileBackend) Write(ctx context.Context, key string, value json.RawMessage) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", f.dir, err)
	}
	// two-space indent keeps the files hand-editable
	var buf bytes.Buffer
	if err := json.Indent(&buf, value, "", "  "); err != nil {
		return fmt.Errorf("indent value for %s: %w", key, err)
	}
	buf.WriteByte('\n')
	if err := os.WriteFile(f.path(key), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path(key), err)
	}
	return nil
}
