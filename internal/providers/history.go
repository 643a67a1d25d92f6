package providers

import (
	"context"
	"fmt"

	"github.com/halcyonbrowser/backend/internal/domain/history"
	"github.com/halcyonbrowser/backend/internal/shared/types"
)

// History exposes the visit log as a catalog service.
type History struct {
	store *history.Store
}

// NewHistory creates a history provider.
func NewHistory(store *history.Store) *History {
	return &History{store: store}
}

// Definition returns service metadata
func (h *History) Definition() types.Service {
	return types.Service{
		ID:           "history",
		Name:         "History",
		Description:  "Visit log for the active profile",
		Category:     types.CategoryBrowsing,
		Capabilities: []string{"list", "add", "clear", "search"},
		Tools: []types.Tool{
			{
				ID:          "history.list",
				Name:        "List History",
				Description: "List visits, most recent first",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "history.add",
				Name:        "Record Visit",
				Description: "Record a page visit at the front of the log",
				Parameters: []types.Parameter{
					{Name: "url", Type: "string", Description: "Page URL", Required: true},
					{Name: "title", Type: "string", Description: "Page title", Required: false},
				},
				Returns: "boolean",
			},
			{
				ID:          "history.clear",
				Name:        "Clear History",
				Description: "Replace the visit log with an empty set",
				Parameters:  []types.Parameter{},
				Returns:     "boolean",
			},
			{
				ID:          "history.search",
				Name:        "Search History",
				Description: "Case-insensitive substring match over URL and title",
				Parameters: []types.Parameter{
					{Name: "query", Type: "string", Description: "Search query", Required: true},
				},
				Returns: "array",
			},
		},
	}
}

// Execute runs a history operation
func (h *History) Execute(_ context.Context, toolID string, params map[string]interface{}, _ *types.Context) (*types.Result, error) {
	switch toolID {
	case "history.list":
		return success(map[string]interface{}{"entries": h.store.All()})

	case "history.add":
		url, ok := stringParam(params, "url")
		if !ok {
			return failure("url required")
		}
		if err := h.store.Add(url, optionalString(params, "title")); err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"recorded": true})

	case "history.clear":
		if err := h.store.Clear(); err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"cleared": true})

	case "history.search":
		query, ok := params["query"].(string)
		if !ok {
			return failure("query required")
		}
		return success(map[string]interface{}{"entries": h.store.Search(query)})

	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
