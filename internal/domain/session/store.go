// Package session owns the per-profile tab snapshot used for session
// restore. The document is a full-replace snapshot, not an append log;
// whether to restore it is the caller's policy (the restore_session
// preference lives with the settings store).
package session

import (
	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/paths"
	"github.com/halcyonbrowser/backend/internal/shared/types"
	"github.com/halcyonbrowser/backend/internal/storage/record"
)

// Profiles resolves the active profile namespace.
type Profiles interface {
	ActiveID() string
}

// Store exposes session snapshot operations against the active profile.
type Store struct {
	records  *record.Store
	profiles Profiles
	log      *logging.Logger
}

// NewStore creates a session store.
func NewStore(records *record.Store, profiles Profiles, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	return &Store{records: records, profiles: profiles, log: log}
}

func (s *Store) scope() record.Scope {
	return record.Profile(s.profiles.ActiveID())
}

// Save overwrites the prior snapshot entirely.
func (s *Store) Save(tabs []types.SessionTab) error {
	if tabs == nil {
		tabs = []types.SessionTab{}
	}
	return record.Write(s.records, s.scope(), paths.SessionFile, tabs)
}

// Tabs returns the saved snapshot, empty when none exists.
func (s *Store) Tabs() []types.SessionTab {
	return record.Read(s.records, s.scope(), paths.SessionFile, []types.SessionTab{})
}
