package providers

import (
	"context"
	"fmt"

	"github.com/halcyonbrowser/backend/internal/domain/bookmarks"
	"github.com/halcyonbrowser/backend/internal/shared/types"
)

// Bookmarks exposes the bookmark store as a catalog service.
type Bookmarks struct {
	store *bookmarks.Store
}

// NewBookmarks creates a bookmarks provider.
func NewBookmarks(store *bookmarks.Store) *Bookmarks {
	return &Bookmarks{store: store}
}

// Definition returns service metadata
func (b *Bookmarks) Definition() types.Service {
	return types.Service{
		ID:           "bookmarks",
		Name:         "Bookmarks",
		Description:  "Saved page references for the active profile",
		Category:     types.CategoryBrowsing,
		Capabilities: []string{"list", "add", "remove", "contains"},
		Tools: []types.Tool{
			{
				ID:          "bookmarks.list",
				Name:        "List Bookmarks",
				Description: "List all bookmarks in insertion order",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "bookmarks.add",
				Name:        "Add Bookmark",
				Description: "Save a page reference; adding a bookmarked URL again is a no-op",
				Parameters: []types.Parameter{
					{Name: "url", Type: "string", Description: "Page URL", Required: true},
					{Name: "title", Type: "string", Description: "Page title", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "bookmarks.remove",
				Name:        "Remove Bookmark",
				Description: "Drop the bookmark with the given URL",
				Parameters: []types.Parameter{
					{Name: "url", Type: "string", Description: "Page URL", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "bookmarks.contains",
				Name:        "Is Bookmarked",
				Description: "Check whether a URL is bookmarked",
				Parameters: []types.Parameter{
					{Name: "url", Type: "string", Description: "Page URL", Required: true},
				},
				Returns: "boolean",
			},
		},
	}
}

// Execute runs a bookmarks operation
func (b *Bookmarks) Execute(_ context.Context, toolID string, params map[string]interface{}, _ *types.Context) (*types.Result, error) {
	switch toolID {
	case "bookmarks.list":
		return success(map[string]interface{}{"bookmarks": b.store.All()})

	case "bookmarks.add":
		url, ok := stringParam(params, "url")
		if !ok {
			return failure("url required")
		}
		list, err := b.store.Add(url, optionalString(params, "title"))
		if err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"bookmarks": list})

	case "bookmarks.remove":
		url, ok := stringParam(params, "url")
		if !ok {
			return failure("url required")
		}
		list, err := b.store.Remove(url)
		if err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"bookmarks": list})

	case "bookmarks.contains":
		url, ok := stringParam(params, "url")
		if !ok {
			return failure("url required")
		}
		return success(map[string]interface{}{"bookmarked": b.store.Contains(url)})

	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
