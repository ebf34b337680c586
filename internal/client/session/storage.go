package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TokenStorage persists the raw JWT string between runs. Absence of a stored
// token means "logged out".
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStorage keeps the token in a single file under the user's config
// directory. Writes are serialized by direct user action (login/logout), so
// no locking is needed.
type FileStorage struct {
	path string
}

// NewFileStorage places the token file at <UserConfigDir>/recco/token.
func NewFileStorage() (*FileStorage, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return NewFileStorageAt(filepath.Join(dir, "recco", "token")), nil
}

// NewFileStorageAt uses an explicit file path. Intended for tests.
func NewFileStorageAt(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load returns the stored token, or "" when none is stored.
func (s *FileStorage) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStorage) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (s *FileStorage) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// Token implements the API client's TokenSource: the persisted token is read
// on every call, mirroring that login/logout may change it between requests.
func (s *FileStorage) Token() string {
	token, err := s.Load()
	if err != nil {
		return ""
	}
	return token
}
