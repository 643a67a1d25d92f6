package providers

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonbrowser/backend/internal/domain/auth"
	"github.com/halcyonbrowser/backend/internal/domain/bookmarks"
	"github.com/halcyonbrowser/backend/internal/domain/profiles"
	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/types"
	"github.com/halcyonbrowser/backend/internal/storage/record"
	"github.com/halcyonbrowser/backend/internal/storage/secure"
	"github.com/halcyonbrowser/backend/internal/storage/vault"
)

func testRecords(t *testing.T) *record.Store {
	t.Helper()
	return record.New(t.TempDir(), logging.NewNop())
}

func testSecrets(t *testing.T, records *record.Store) *secure.Store {
	t.Helper()
	cipher, err := vault.LoadOrCreate(filepath.Join(t.TempDir(), "vault.key"))
	require.NoError(t, err)
	return secure.New(records, cipher, logging.NewNop())
}

func TestBookmarksProviderRoundTrip(t *testing.T) {
	records := testRecords(t)
	manager := profiles.NewManager(records, logging.NewNop())
	provider := NewBookmarks(bookmarks.NewStore(records, manager, logging.NewNop()))

	ctx := context.Background()

	result, err := provider.Execute(ctx, "bookmarks.add", map[string]interface{}{
		"url":   "https://go.dev",
		"title": "Go",
	}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)

	result, err = provider.Execute(ctx, "bookmarks.contains", map[string]interface{}{
		"url": "https://go.dev",
	}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, true, result.Data["bookmarked"])

	result, err = provider.Execute(ctx, "bookmarks.list", nil, nil)
	require.NoError(t, err)
	list, ok := result.Data["bookmarks"].([]types.Bookmark)
	require.True(t, ok)
	assert.Len(t, list, 1)
}

func TestBookmarksProviderMissingParam(t *testing.T) {
	records := testRecords(t)
	manager := profiles.NewManager(records, logging.NewNop())
	provider := NewBookmarks(bookmarks.NewStore(records, manager, logging.NewNop()))

	result, err := provider.Execute(context.Background(), "bookmarks.add", map[string]interface{}{}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
}

func TestBookmarksProviderUnknownTool(t *testing.T) {
	records := testRecords(t)
	manager := profiles.NewManager(records, logging.NewNop())
	provider := NewBookmarks(bookmarks.NewStore(records, manager, logging.NewNop()))

	result, err := provider.Execute(context.Background(), "bookmarks.nope", nil, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestProfilesProviderLifecycle(t *testing.T) {
	records := testRecords(t)
	manager := profiles.NewManager(records, logging.NewNop())
	provider := NewProfiles(manager)

	ctx := context.Background()

	result, err := provider.Execute(ctx, "profiles.create", map[string]interface{}{
		"name": "Work",
	}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	created, ok := result.Data["profile"].(types.Profile)
	require.True(t, ok)
	assert.Equal(t, "Work", created.Name)

	result, err = provider.Execute(ctx, "profiles.switch", map[string]interface{}{
		"id": created.ID,
	}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)

	result, err = provider.Execute(ctx, "profiles.active", nil, nil)
	require.NoError(t, err)
	active, ok := result.Data["profile"].(types.Profile)
	require.True(t, ok)
	assert.Equal(t, created.ID, active.ID)

	result, err = provider.Execute(ctx, "profiles.switch", map[string]interface{}{
		"id": "prof_does_not_exist",
	}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}

func TestAuthProviderErrorKinds(t *testing.T) {
	records := testRecords(t)
	manager := profiles.NewManager(records, logging.NewNop())
	service := auth.NewService(testSecrets(t, records), manager, logging.NewNop())
	provider := NewAuth(service)

	ctx := context.Background()
	creds := map[string]interface{}{
		"email":    "ada@example.com",
		"password": "hunter22",
	}

	result, err := provider.Execute(ctx, "auth.register", creds, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	state, ok := result.Data["state"].(types.AuthState)
	require.True(t, ok)
	assert.True(t, state.IsLoggedIn)

	result, err = provider.Execute(ctx, "auth.register", creds, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Equal(t, "duplicate-email", *result.Error)

	result, err = provider.Execute(ctx, "auth.login", map[string]interface{}{
		"email":    "ada@example.com",
		"password": "wrong",
	}, nil)
	require.NoError(t, err)
	require.False(t, result.Success)
	assert.Equal(t, "invalid-credentials", *result.Error)

	result, err = provider.Execute(ctx, "auth.logout", nil, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestDefinitionsCoverExecutedTools(t *testing.T) {
	records := testRecords(t)
	manager := profiles.NewManager(records, logging.NewNop())
	provider := NewBookmarks(bookmarks.NewStore(records, manager, logging.NewNop()))

	def := provider.Definition()
	require.NotEmpty(t, def.Tools)
	for _, tool := range def.Tools {
		result, err := provider.Execute(context.Background(), tool.ID, map[string]interface{}{}, nil)
		require.NoError(t, err, tool.ID)
		require.NotNil(t, result, tool.ID)
	}
}
