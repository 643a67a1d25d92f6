package downloads

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/types"
	"github.com/halcyonbrowser/backend/internal/storage/record"
)

type staticProfiles struct{ id string }

func (p staticProfiles) ActiveID() string { return p.id }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	records := record.New(t.TempDir(), logging.NewNop())
	return NewStore(records, staticProfiles{id: "default"}, logging.NewNop())
}

func TestSaveInsertsAtFront(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save(types.DownloadItem{ID: "one", Filename: "a.zip", State: types.DownloadProgressing})
	require.NoError(t, err)
	_, err = s.Save(types.DownloadItem{ID: "two", Filename: "b.zip", State: types.DownloadProgressing})
	require.NoError(t, err)

	list := s.All()
	require.Len(t, list, 2)
	assert.Equal(t, "two", list[0].ID)
	assert.Equal(t, "one", list[1].ID)
}

func TestSaveUpsertsInPlace(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save(types.DownloadItem{ID: "one", ReceivedBytes: 10, State: types.DownloadProgressing})
	require.NoError(t, err)
	_, err = s.Save(types.DownloadItem{ID: "two", ReceivedBytes: 0, State: types.DownloadProgressing})
	require.NoError(t, err)

	// Progress update for "one" must keep its position (index 1).
	_, err = s.Save(types.DownloadItem{ID: "one", ReceivedBytes: 500, State: types.DownloadCompleted})
	require.NoError(t, err)

	list := s.All()
	require.Len(t, list, 2)
	assert.Equal(t, "two", list[0].ID)
	assert.Equal(t, "one", list[1].ID)
	assert.Equal(t, int64(500), list[1].ReceivedBytes)
	assert.Equal(t, types.DownloadCompleted, list[1].State)
}

func TestSaveGeneratesMissingID(t *testing.T) {
	s := newTestStore(t)

	item, err := s.Save(types.DownloadItem{Filename: "anon.bin", State: types.DownloadProgressing})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.False(t, item.StartedAt.IsZero())
}

func TestCapEvictsOldest(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < maxEntries+5; i++ {
		_, err := s.Save(types.DownloadItem{ID: fmt.Sprintf("dl-%d", i), State: types.DownloadCompleted})
		require.NoError(t, err)
	}

	list := s.All()
	require.Len(t, list, maxEntries)
	assert.Equal(t, fmt.Sprintf("dl-%d", maxEntries+4), list[0].ID)
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Save(types.DownloadItem{ID: "one"})
	require.NoError(t, err)

	require.NoError(t, s.Clear())
	assert.Empty(t, s.All())
}
