// Package bookmarks owns the per-profile bookmark document: an
// insertion-ordered set keyed by URL.
package bookmarks

import (
	"time"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/paths"
	"github.com/halcyonbrowser/backend/internal/shared/types"
	"github.com/halcyonbrowser/backend/internal/storage/record"
)

// Profiles resolves the active profile namespace.
type Profiles interface {
	ActiveID() string
}

// Store exposes bookmark operations against the active profile.
type Store struct {
	records  *record.Store
	profiles Profiles
	log      *logging.Logger
}

// NewStore creates a bookmark store.
func NewStore(records *record.Store, profiles Profiles, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	return &Store{records: records, profiles: profiles, log: log}
}

func (s *Store) scope() record.Scope {
	return record.Profile(s.profiles.ActiveID())
}

// All returns the profile's bookmarks in insertion order.
func (s *Store) All() []types.Bookmark {
	return record.Read(s.records, s.scope(), paths.BookmarksFile, []types.Bookmark{})
}

// Add saves a page reference. Adding an already-bookmarked URL is a
// no-op, so the call is idempotent by URL.
func (s *Store) Add(url, title string) ([]types.Bookmark, error) {
	list := s.All()
	for _, b := range list {
		if b.URL == url {
			return list, nil
		}
	}

	list = append(list, types.Bookmark{
		URL:     url,
		Title:   title,
		AddedAt: time.Now(),
	})
	if err := record.Write(s.records, s.scope(), paths.BookmarksFile, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Remove drops the bookmark with the given URL, if present.
func (s *Store) Remove(url string) ([]types.Bookmark, error) {
	list := s.All()
	kept := make([]types.Bookmark, 0, len(list))
	for _, b := range list {
		if b.URL != url {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(list) {
		return list, nil
	}

	if err := record.Write(s.records, s.scope(), paths.BookmarksFile, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Contains reports whether the URL is bookmarked in the active profile.
func (s *Store) Contains(url string) bool {
	for _, b := range s.All() {
		if b.URL == url {
			return true
		}
	}
	return false
}
