// Package session persists the bearer credential between CLI invocations.
// The credential is the only cross-cutting mutable shared state: it is
// written by login/logout/expiry handling and read by every outgoing request.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/ekaraca/shiftdash/pkg/core/model"
)

// ErrNotLoggedIn reports that no credential is stored
var ErrNotLoggedIn = errors.New("not logged in")

type state struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Store is a file-backed credential store. It implements
// planclient.TokenSource. Reads and writes go through an atomic in-memory
// copy; the file is rewritten on every change.
type Store struct {
	mu    sync.Mutex
	path  string
	state state
}

// Open loads the credential file at path, tolerating a missing file (first
// run, or a logged-out state).
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	if err := json.Unmarshal(data, &s.state); err != nil {
		// A corrupt session file is equivalent to being logged out.
		s.state = state{}
	}
	return s, nil
}

// DefaultPath returns the session file location under the user config dir
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(configDir, "shiftdash", "session.json"), nil
}

// Token returns the stored credential, or the empty string when logged out
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// User returns the stored account, or ErrNotLoggedIn
func (s *Store) User() (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Token == "" {
		return model.User{}, ErrNotLoggedIn
	}
	return s.state.User, nil
}

// Set replaces the stored credential and persists it
func (s *Store) Set(token string, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{Token: token, User: user}
	return s.save()
}

// Clear removes the stored credential. Used on logout and whenever the
// backend answers 401.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{}
	return s.save()
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
