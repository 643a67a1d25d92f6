package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/shared/types"
)

type stubProvider struct {
	id     string
	result *types.Result
	err    error
	called string
}

func (p *stubProvider) Definition() types.Service {
	return types.Service{ID: p.id, Name: p.id, Category: types.CategoryBrowsing}
}

func (p *stubProvider) Execute(_ context.Context, toolID string, _ map[string]interface{}, _ *types.Context) (*types.Result, error) {
	p.called = toolID
	return p.result, p.err
}

func TestRegisterAndList(t *testing.T) {
	r := NewRegistry(nil, logging.NewNop())

	require.NoError(t, r.Register(&stubProvider{id: "history"}))
	require.NoError(t, r.Register(&stubProvider{id: "bookmarks"}))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "bookmarks", list[0].ID)
	assert.Equal(t, "history", list[1].ID)
	assert.Equal(t, 2, r.Count())
}

func TestRegisterRejectsEmptyAndDuplicateIDs(t *testing.T) {
	r := NewRegistry(nil, logging.NewNop())

	assert.Error(t, r.Register(&stubProvider{id: ""}))
	require.NoError(t, r.Register(&stubProvider{id: "auth"}))
	assert.Error(t, r.Register(&stubProvider{id: "auth"}))
}

func TestExecuteRoutesByPrefix(t *testing.T) {
	r := NewRegistry(nil, logging.NewNop())
	p := &stubProvider{id: "bookmarks", result: &types.Result{Success: true}}
	require.NoError(t, r.Register(p))

	result, err := r.Execute(context.Background(), "bookmarks.add", map[string]interface{}{"url": "https://a.com"}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "bookmarks.add", p.called)
}

func TestExecuteUnknownService(t *testing.T) {
	r := NewRegistry(nil, logging.NewNop())

	_, err := r.Execute(context.Background(), "nosuch.tool", nil, nil)
	assert.Error(t, err)
}

func TestExecuteMalformedToolID(t *testing.T) {
	r := NewRegistry(nil, logging.NewNop())

	_, err := r.Execute(context.Background(), "nodot", nil, nil)
	assert.Error(t, err)
}

func TestExecutePropagatesProviderError(t *testing.T) {
	r := NewRegistry(nil, logging.NewNop())
	boom := errors.New("boom")
	require.NoError(t, r.Register(&stubProvider{id: "auth", err: boom}))

	_, err := r.Execute(context.Background(), "auth.login", nil, nil)
	assert.ErrorIs(t, err, boom)
}
