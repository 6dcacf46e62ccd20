package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/hausbar/drinkwise/internal/core/domain"
)

// fileTokens is the on-disk layout. Key names are fixed so other tooling
// can read the same session.
type fileTokens struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

// FileStore persists the credential pair as a mode-0600 JSON file, the
// process-local equivalent of the browser's persistent key-value area.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore writing to path. Parent directories are
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultTokenPath returns the conventional token location inside the user
// config directory.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "drinkwise", "tokens.json"), nil
}

func (s *FileStore) Tokens(_ context.Context) (domain.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) Save(_ context.Context, pair domain.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(pair)
}

func (s *FileStore) SetAccess(_ context.Context, access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pair, err := s.read()
	if err != nil {
		return err
	}
	pair.Access = access
	return s.write(pair)
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

func (s *FileStore) read() (domain.TokenPair, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.TokenPair{}, nil
	}
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("read token file: %w", err)
	}
	var ft fileTokens
	if err := json.Unmarshal(data, &ft); err != nil {
		// A corrupt token file is treated as no session rather than a
		// permanently wedged client.
		return domain.TokenPair{}, nil
	}
	return domain.TokenPair{Access: ft.Access, Refresh: ft.Refresh}, nil
}

func (s *FileStore) write(pair domain.TokenPair) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	data, err := json.Marshal(fileTokens{Access: pair.Access, Refresh: pair.Refresh})
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}
