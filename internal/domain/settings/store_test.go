package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/paths"
	"github.com/halcyonbrowser/backend/internal/shared/types"
	"github.com/halcyonbrowser/backend/internal/storage/record"
)

type staticProfiles struct{ id string }

func (p staticProfiles) ActiveID() string { return p.id }

func newTestStore(t *testing.T) (*Store, *record.Store) {
	t.Helper()
	records := record.New(t.TempDir(), logging.NewNop())
	return NewStore(records, staticProfiles{id: "default"}, logging.NewNop()), records
}

func TestGetMissingDocumentReturnsDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	got := s.Get()
	assert.Equal(t, Defaults(), got)
	assert.Equal(t, types.EngineGoogle, got.SearchEngine)
	assert.True(t, got.AdBlockEnabled)
}

func TestUpdateSingleFieldLeavesOthersUnchanged(t *testing.T) {
	s, _ := newTestStore(t)

	off := false
	got, err := s.Update(types.SettingsPatch{AdBlockEnabled: &off})
	require.NoError(t, err)

	assert.False(t, got.AdBlockEnabled)
	assert.Equal(t, Defaults().SearchEngine, got.SearchEngine)
	assert.Equal(t, Defaults().RestoreSession, got.RestoreSession)

	// Durable across reads.
	assert.Equal(t, got, s.Get())
}

func TestUpdateSearchEngine(t *testing.T) {
	s, _ := newTestStore(t)

	engine := types.EngineDuckDuckGo
	got, err := s.Update(types.SettingsPatch{SearchEngine: &engine})
	require.NoError(t, err)
	assert.Equal(t, types.EngineDuckDuckGo, got.SearchEngine)
}

func TestNewDefaultFieldAppliesToOldDocument(t *testing.T) {
	s, records := newTestStore(t)

	// A document written before restore_session existed.
	old := []byte("{\n  \"search_engine\": \"bing\"\n}")
	path := records.Path(record.Profile("default"), paths.SettingsFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, old, 0o600))

	got := s.Get()
	assert.Equal(t, types.EngineBing, got.SearchEngine)
	assert.Equal(t, Defaults().RestoreSession, got.RestoreSession)
	assert.Equal(t, Defaults().AdBlockEnabled, got.AdBlockEnabled)
}

func TestUnknownFieldsIgnored(t *testing.T) {
	s, records := newTestStore(t)

	doc := []byte(`{"search_engine": "brave", "theme": "dark"}`)
	path := records.Path(record.Profile("default"), paths.SettingsFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	assert.Equal(t, types.EngineBrave, s.Get().SearchEngine)
}

func TestEnginesCatalog(t *testing.T) {
	engines := Engines()
	require.NotEmpty(t, engines)

	ids := make(map[string]bool)
	for _, e := range engines {
		ids[e.ID] = true
		assert.NotEmpty(t, e.Template)
	}
	assert.True(t, ids[types.EngineGoogle])
	assert.True(t, ids[types.EngineDuckDuckGo])
}
