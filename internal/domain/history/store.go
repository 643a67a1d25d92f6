// Package history owns the per-profile visit log: newest first, capped
// at 1000 entries.
package history

import (
	"strings"
	"time"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/paths"
	"github.com/halcyonbrowser/backend/internal/shared/types"
	"github.com/halcyonbrowser/backend/internal/storage/record"
)

// maxEntries caps the visit log; the oldest (tail) entries are evicted.
const maxEntries = 1000

// Profiles resolves the active profile namespace.
type Profiles interface {
	ActiveID() string
}

// Store exposes history operations against the active profile.
type Store struct {
	records  *record.Store
	profiles Profiles
	log      *logging.Logger
}

// NewStore creates a history store.
func NewStore(records *record.Store, profiles Profiles, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	return &Store{records: records, profiles: profiles, log: log}
}

func (s *Store) scope() record.Scope {
	return record.Profile(s.profiles.ActiveID())
}

// All returns the visit log, most recent first.
func (s *Store) All() []types.HistoryEntry {
	return record.Read(s.records, s.scope(), paths.HistoryFile, []types.HistoryEntry{})
}

// Add records a visit at the front of the log. History is a log, not a
// set: repeat visits to the same URL each get their own entry.
func (s *Store) Add(url, title string) error {
	entry := types.HistoryEntry{
		URL:       url,
		Title:     title,
		VisitedAt: time.Now(),
	}

	list := append([]types.HistoryEntry{entry}, s.All()...)
	if len(list) > maxEntries {
		list = list[:maxEntries]
	}
	return record.Write(s.records, s.scope(), paths.HistoryFile, list)
}

// Clear replaces the log with an empty set.
func (s *Store) Clear() error {
	return record.Write(s.records, s.scope(), paths.HistoryFile, []types.HistoryEntry{})
}

// Search returns entries whose URL or title contains the query,
// case-insensitively, preserving log order.
func (s *Store) Search(query string) []types.HistoryEntry {
	q := strings.ToLower(query)
	matches := []types.HistoryEntry{}
	for _, e := range s.All() {
		if strings.Contains(strings.ToLower(e.URL), q) || strings.Contains(strings.ToLower(e.Title), q) {
			matches = append(matches, e)
		}
	}
	return matches
}
