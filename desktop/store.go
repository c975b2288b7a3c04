package desktop

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore is a game.Store keeping one file per key in a directory.
type FileStore struct {
	basePath string
}

// NewFileStore creates a store rooted at basePath. The directory is created
// on the first write.
func NewFileStore(basePath string) *FileStore {
	return &FileStore{basePath: basePath}
}

// DefaultSaveDir returns the per-user directory for save files.
func DefaultSaveDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ufo-defense"), nil
}

// FilePath returns the path of the file holding key.
func (s *FileStore) FilePath(key string) string {
	return filepath.Join(s.basePath, key+".sav")
}

func (s *FileStore) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(s.FilePath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Set writes through a temporary file so a crash never leaves a torn save.
func (s *FileStore) Set(key, value string) error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return err
	}
	path := s.FilePath(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (s *FileStore) Remove(key string) error {
	err := os.Remove(s.FilePath(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
