package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBlob stores the blob as a single file, written via a temp file and
// rename so readers never observe a partial write.
type FileBlob struct {
	path string
}

// OpenFile creates a FileBlob at the given path, creating parent
// directories as needed.
func OpenFile(path string) (*FileBlob, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	return &FileBlob{path: path}, nil
}

func (f *FileBlob) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return data, nil
}

func (f *FileBlob) Save(data []byte) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".wordventure-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (f *FileBlob) Delete() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", f.path, err)
	}
	return nil
}

func (f *FileBlob) Close() error {
	return nil
}
