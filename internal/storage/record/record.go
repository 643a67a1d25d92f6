// Package record implements the plain record store: whole-document
// JSON persistence scoped either globally or to one profile namespace.
//
// Reads never fail from the caller's perspective. A missing or
// unparsable document resolves to the caller's fallback value; the
// corruption case is surfaced through the logger so data loss stays
// diagnosable. Writes replace the whole document via a temp file and
// rename, so no reader ever observes a half-written document.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/paths"
)

// Scope selects which namespace a document lives in.
type Scope struct {
	profileID string
}

// Global scopes a document to the data root itself.
func Global() Scope { return Scope{} }

// Profile scopes a document to one profile's namespace.
func Profile(id string) Scope { return Scope{profileID: id} }

func (s Scope) global() bool { return s.profileID == "" }

// Store reads and writes JSON documents under a single data root.
// Concurrent writers racing on the same document observe last-write-
// wins; the service assumes a single in-process writer per document.
type Store struct {
	root string
	log  *logging.Logger
}

// New creates a store rooted at dir.
func New(dir string, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	return &Store{root: dir, log: log}
}

// Root returns the data root directory.
func (s *Store) Root() string { return s.root }

// Path resolves a document location within the store.
func (s *Store) Path(scope Scope, name string) string {
	if scope.global() {
		return paths.GlobalFile(s.root, name)
	}
	return paths.ProfileFile(s.root, scope.profileID, name)
}

// Read returns the decoded document, or fallback when the document is
// missing or unparsable.
func Read[T any](s *Store, scope Scope, name string, fallback T) T {
	data, ok := s.ReadRaw(scope, name)
	if !ok {
		return fallback
	}

	var v T
	if err := sonic.Unmarshal(data, &v); err != nil {
		s.log.Warn("document unparsable, using fallback",
			zap.String("document", name),
			zap.String("profile", scope.profileID),
			zap.Error(err))
		return fallback
	}
	return v
}

// Write serializes v with stable human-readable formatting and
// replaces the document wholesale.
func Write[T any](s *Store, scope Scope, name string, v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("record: marshal %s: %w", name, err)
	}
	return s.WriteRaw(scope, name, data)
}

// ReadRaw returns the raw document bytes. The second return is false
// when the document does not exist or cannot be read; unexpected read
// errors are logged, a plain missing file is not.
func (s *Store) ReadRaw(scope Scope, name string) ([]byte, bool) {
	data, err := os.ReadFile(s.Path(scope, name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("document unreadable, using fallback",
				zap.String("document", name),
				zap.String("profile", scope.profileID),
				zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// WriteRaw writes document bytes atomically, creating any missing
// parent directories.
func (s *Store) WriteRaw(scope Scope, name string, data []byte) error {
	path := s.Path(scope, name)
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("record: mkdir %s: %w", dir, err)
	}

	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("record: temp file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("record: write %s: %w", name, err)
	}
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return fmt.Errorf("record: chmod %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("record: close %s: %w", name, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("record: rename %s: %w", name, err)
	}
	return nil
}

// RemoveProfile recursively deletes a profile's entire namespace.
func (s *Store) RemoveProfile(profileID string) error {
	if err := paths.ValidateProfileID(profileID); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	if err := os.RemoveAll(paths.ProfileDir(s.root, profileID)); err != nil {
		return fmt.Errorf("record: remove profile %s: %w", profileID, err)
	}
	return nil
}
