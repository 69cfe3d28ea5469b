package tokenstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	fileName   = "adminToken"
	defaultDir = ".portfolio-admin"
)

// Store persists the admin bearer token between CLI invocations.
type Store struct {
	TokenFile string
}

func New(configDir string) *Store {
	return &Store{
		TokenFile: filepath.Join(configDir, fileName),
	}
}

// DefaultDir returns ~/.portfolio-admin.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, defaultDir), nil
}

func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.TokenFile), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(s.TokenFile, []byte(token), 0o600)
}

// Load returns "" with no error when no token has been saved.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.TokenFile)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *Store) Clear() error {
	err := os.Remove(s.TokenFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
