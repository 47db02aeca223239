// Package file persists the session as a small JSON document on disk, the
// console's durable client storage.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
)

// The stored document keeps the storage-key contract shared by all clients
// of the auth backend:
//
//	{"jwtToken": "...", "currentUser": {"username": "...", "role": "..."}}
type document struct {
	Token string       `json:"jwtToken,omitempty"`
	User  *domain.User `json:"currentUser,omitempty"`
}

// Store is a file-backed SessionStore.
type Store struct {
	path string
}

var _ ports.SessionStore = (*Store)(nil)

// New returns a Store writing to the given path.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath places the session file under the user config directory,
// namespaced by app (e.g. ~/.config/<app>/session.json).
func DefaultPath(app string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, app, "session.json"), nil
}

// Load reads the persisted session. A missing file, or a document with
// either key absent, means logged out.
func (s *Store) Load(_ context.Context) (*domain.Session, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	if doc.Token == "" || doc.User == nil {
		return nil, nil
	}
	return &domain.Session{Token: doc.Token, User: *doc.User}, nil
}

// Save writes the session atomically (temp file plus rename) so a crash
// mid-write never leaves a torn document behind.
func (s *Store) Save(_ context.Context, session *domain.Session) error {
	raw, err := json.MarshalIndent(document{Token: session.Token, User: &session.User}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (s *Store) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
