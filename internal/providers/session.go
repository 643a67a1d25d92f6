package providers

import (
	"context"
	"fmt"

	"github.com/halcyonbrowser/backend/internal/domain/session"
	"github.com/halcyonbrowser/backend/internal/shared/types"
)

// Session exposes the tab snapshot store as a catalog service.
type Session struct {
	store *session.Store
}

// NewSession creates a session provider.
func NewSession(store *session.Store) *Session {
	return &Session{store: store}
}

// Definition returns service metadata
func (s *Session) Definition() types.Service {
	return types.Service{
		ID:           "session",
		Name:         "Session",
		Description:  "Open-tab snapshot for session restore",
		Category:     types.CategoryBrowsing,
		Capabilities: []string{"save", "get"},
		Tools: []types.Tool{
			{
				ID:          "session.save",
				Name:        "Save Session",
				Description: "Replace the tab snapshot wholesale",
				Parameters: []types.Parameter{
					{Name: "tabs", Type: "array", Description: "Open tabs", Required: true},
				},
				Returns: "boolean",
			},
			{
				ID:          "session.get",
				Name:        "Get Session",
				Description: "Get the saved tab snapshot",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
		},
	}
}

// Execute runs a session operation
func (s *Session) Execute(_ context.Context, toolID string, params map[string]interface{}, _ *types.Context) (*types.Result, error) {
	switch toolID {
	case "session.save":
		var tabs []types.SessionTab
		if err := decodeParam(params, "tabs", &tabs); err != nil {
			return failure(err.Error())
		}
		if err := s.store.Save(tabs); err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"saved": true, "tabs": len(tabs)})

	case "session.get":
		return success(map[string]interface{}{"tabs": s.store.Tabs()})

	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
