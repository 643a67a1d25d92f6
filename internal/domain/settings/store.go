// Package settings owns the per-profile preference document. Reads
// merge the fixed defaults with whatever partial document is on disk,
// so fields introduced after a document was written silently pick up
// their defaults. Unknown fields on disk are ignored.
package settings

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

// doc is the on-disk shape. Pointer fields distinguish "absent" from
// a zero value so defaulting works per field.
type doc struct {
	SearchEngine   *string `json:"search_engine,omitempty"`
	AdBlockEnabled *bool   `json:"ad_block_enabled,omitempty"`
	RestoreSession *bool   `json:"restore_session,omitempty"`
}

// Defaults returns the documented default settings.
func Defaults() types.Settings {
	return types.Settings{
		SearchEngine:   types.EngineGoogle,
		AdBlockEnabled: true,
		RestoreSession: true,
	}
}

// Engines returns the search engine catalog. Templates are opaque to
// this service; the chrome substitutes the query itself.
func Engines() []types.SearchEngine {
	return []types.SearchEngine{
		{ID: types.EngineGoogle, Name: "Google", Template: "https://www.google.com/search?q=%s"},
		{ID: types.EngineDuckDuckGo, Name: "DuckDuckGo", Template: "https://duckduckgo.com/?q=%s"},
		{ID: types.EngineBing, Name: "Bing", Template: "https://www.bing.com/search?q=%s"},
		{ID: types.EngineBrave, Name: "Brave Search", Template: "https://search.brave.com/search?q=%s"},
	}
}

// Store exposes settings operations against the active profile.
type Store struct {
	records  *record.Store
	profiles Profiles
	log      *logging.Logger
}

// NewStore creates a settings store.
func NewStore(records *record.Store, profiles Profiles, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NewNop()
	}
	return &Store{records: records, profiles: profiles, log: log}
}

func (s *Store) scope() record.Scope {
	return record.Profile(s.profiles.ActiveID())
}

// Get returns the profile's settings with defaults applied for any
// missing fields.
func (s *Store) Get() types.Settings {
	d := record.Read(s.records, s.scope(), paths.SettingsFile, doc{})

	out := Defaults()
	if d.SearchEngine != nil {
		out.SearchEngine = *d.SearchEngine
	}
	if d.AdBlockEnabled != nil {
		out.AdBlockEnabled = *d.AdBlockEnabled
	}
	if d.RestoreSession != nil {
		out.RestoreSession = *d.RestoreSession
	}
	return out
}

// Update applies a shallow patch over the current (already-defaulted)
// settings and writes the document back wholesale.
func (s *Store) Update(patch types.SettingsPatch) (types.Settings, error) {
	cur := s.Get()
	if patch.SearchEngine != nil {
		cur.SearchEngine = *patch.SearchEngine
	}
	if patch.AdBlockEnabled != nil {
		cur.AdBlockEnabled = *patch.AdBlockEnabled
	}
	if patch.RestoreSession != nil {
		cur.RestoreSession = *patch.RestoreSession
	}

	full := doc{
		SearchEngine:   &cur.SearchEngine,
		AdBlockEnabled: &cur.AdBlockEnabled,
		RestoreSession: &cur.RestoreSession,
	}
	if err := record.Write(s.records, s.scope(), paths.SettingsFile, full); err != nil {
		return cur, err
	}
	return cur, nil
}
