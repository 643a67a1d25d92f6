// Package downloads owns the per-profile download log: upsert by id,
// newest first, capped at 100 entries.
package downloads

import (
	"time"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/id"
	"github.com/halcyonbrowser/backend/internal/shared/paths"
	"github.com/halcyonbrowser/backend/internal/shared/types"
	"github.com/halcyonbrowser/backend/internal/storage/record"
)

// maxEntries caps the download log; the oldest (tail) entries are
// evicted.
const maxEntries = 100

// Profiles resolves the active profile namespace.
type Profiles interface {
	ActiveID() string
}

// Store exposes download-record operations against the active profile.
type Store struct {
	records  *record.Store
	profiles Profiles
	log      *logging.Logger
}

// NewStore creates a downloads store.
func NewStore(records *record.Store, profiles Profiles, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	return &Store{records: records, profiles: profiles, log: log}
}

func (s *Store) scope() record.Scope {
	return record.Profile(s.profiles.ActiveID())
}

// All returns the download log, most recent first.
func (s *Store) All() []types.DownloadItem {
	return record.Read(s.records, s.scope(), paths.DownloadsFile, []types.DownloadItem{})
}

// Save upserts a download record by id. An existing entry is replaced
// in place, keeping its list position; a new entry is inserted at the
// front. An empty id gets a generated one. The updated item is
// returned alongside the full log.
func (s *Store) Save(item types.DownloadItem) (types.DownloadItem, error) {
	if item.ID == "" {
		item.ID = id.NewDownloadID().String()
	}
	if item.StartedAt.IsZero() {
		item.StartedAt = time.Now()
	}

	list := s.All()
	replaced := false
	for i, existing := range list {
		if existing.ID == item.ID {
			list[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		list = append([]types.DownloadItem{item}, list...)
	}
	if len(list) > maxEntries {
		list = list[:maxEntries]
	}

	if err := record.Write(s.records, s.scope(), paths.DownloadsFile, list); err != nil {
		return item, err
	}
	return item, nil
}

// Clear replaces the log with an empty set.
func (s *Store) Clear() error {
	return record.Write(s.records, s.scope(), paths.DownloadsFile, []types.DownloadItem{})
}
