package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/paths"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), logging.NewNop())
}

func TestReadMissingReturnsFallback(t *testing.T) {
	s := newTestStore(t)

	got := Read(s, Global(), "absent.json", testDoc{Name: "fallback"})
	assert.Equal(t, testDoc{Name: "fallback"}, got)
}

func TestWriteThenRead(t *testing.T) {
	s := newTestStore(t)

	want := testDoc{Name: "halcyon", Count: 3}
	require.NoError(t, Write(s, Global(), "doc.json", want))

	got := Read(s, Global(), "doc.json", testDoc{})
	assert.Equal(t, want, got)
}

func TestCorruptDocumentReturnsFallback(t *testing.T) {
	s := newTestStore(t)
	path := s.Path(Global(), "broken.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	got := Read(s, Global(), "broken.json", testDoc{Name: "safe"})
	assert.Equal(t, testDoc{Name: "safe"}, got)
}

func TestProfileScopeIsolation(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, Write(s, Profile("alpha"), "doc.json", testDoc{Name: "a"}))
	require.NoError(t, Write(s, Profile("beta"), "doc.json", testDoc{Name: "b"}))

	assert.Equal(t, "a", Read(s, Profile("alpha"), "doc.json", testDoc{}).Name)
	assert.Equal(t, "b", Read(s, Profile("beta"), "doc.json", testDoc{}).Name)
	assert.Equal(t, "", Read(s, Global(), "doc.json", testDoc{}).Name)
}

func TestWriteCreatesParentDirectories(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, Write(s, Profile("fresh"), "doc.json", testDoc{Name: "x"}))

	_, err := os.Stat(paths.ProfileDir(s.Root(), "fresh"))
	assert.NoError(t, err)
}

func TestWriteIsWholeFileReplace(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, Write(s, Global(), "doc.json", map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, Write(s, Global(), "doc.json", map[string]string{"c": "3"}))

	got := Read(s, Global(), "doc.json", map[string]string{})
	assert.Equal(t, map[string]string{"c": "3"}, got)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, Write(s, Global(), "doc.json", testDoc{}))

	entries, err := os.ReadDir(s.Root())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc.json", entries[0].Name())
}

func TestWriteHumanReadable(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, Write(s, Global(), "doc.json", testDoc{Name: "x", Count: 1}))

	data, ok := s.ReadRaw(Global(), "doc.json")
	require.True(t, ok)
	assert.Contains(t, string(data), "\n  \"name\": \"x\"")
}

func TestRemoveProfile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, Write(s, Profile("doomed"), "doc.json", testDoc{}))

	require.NoError(t, s.RemoveProfile("doomed"))

	_, err := os.Stat(paths.ProfileDir(s.Root(), "doomed"))
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveProfileRejectsTraversal(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.RemoveProfile("../outside"))
	assert.Error(t, s.RemoveProfile(""))
}
