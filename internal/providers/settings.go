package providers

import (
	"context"
	"fmt"

	"github.com/halcyonbrowser/backend/internal/domain/settings"
	"github.com/halcyonbrowser/backend/internal/shared/types"
)

// Settings exposes the preference store as a catalog service.
type Settings struct {
	store *settings.Store
}

// NewSettings creates a settings provider.
func NewSettings(store *settings.Store) *Settings {
	return &Settings{store: store}
}

// Definition returns service metadata
func (s *Settings) Definition() types.Service {
	return types.Service{
		ID:           "settings",
		Name:         "Settings",
		Description:  "Preferences for the active profile",
		Category:     types.CategoryBrowsing,
		Capabilities: []string{"get", "update", "engines"},
		Tools: []types.Tool{
			{
				ID:          "settings.get",
				Name:        "Get Settings",
				Description: "Get the profile's settings with defaults applied",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "settings.update",
				Name:        "Update Settings",
				Description: "Shallow-merge a partial settings object and persist",
				Parameters: []types.Parameter{
					{Name: "settings", Type: "object", Description: "Partial settings", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "settings.engines",
				Name:        "Search Engines",
				Description: "List the available search engines",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
		},
	}
}

// Execute runs a settings operation
func (s *Settings) Execute(_ context.Context, toolID string, params map[string]interface{}, _ *types.Context) (*types.Result, error) {
	switch toolID {
	case "settings.get":
		return success(map[string]interface{}{"settings": s.store.Get()})

	case "settings.update":
		var patch types.SettingsPatch
		if err := decodeParam(params, "settings", &patch); err != nil {
			return failure(err.Error())
		}
		updated, err := s.store.Update(patch)
		if err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"settings": updated})

	case "settings.engines":
		return success(map[string]interface{}{"engines": settings.Engines()})

	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
