package providers

import (
	"context"
	"fmt"

	"github.com/halcyonbrowser/backend/internal/domain/profiles"
	"github.com/halcyonbrowser/backend/internal/shared/types"
)

// Profiles exposes the profile directory as a catalog service.
type Profiles struct {
	manager *profiles.Manager
}

// NewProfiles creates a profiles provider.
func NewProfiles(manager *profiles.Manager) *Profiles {
	return &Profiles{manager: manager}
}

// Definition returns service metadata
func (p *Profiles) Definition() types.Service {
	return types.Service{
		ID:           "profiles",
		Name:         "Profiles",
		Description:  "Isolated browsing identities and the active-profile pointer",
		Category:     types.CategoryProfiles,
		Capabilities: []string{"list", "create", "delete", "switch", "active"},
		Tools: []types.Tool{
			{
				ID:          "profiles.list",
				Name:        "List Profiles",
				Description: "List all profiles",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
			{
				ID:          "profiles.create",
				Name:        "Create Profile",
				Description: "Create a profile with a generated id",
				Parameters: []types.Parameter{
					{Name: "name", Type: "string", Description: "Display name", Required: true},
					{Name: "avatar", Type: "string", Description: "Avatar tag", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "profiles.delete",
				Name:        "Delete Profile",
				Description: "Delete a profile and its namespace; deleting default is a no-op",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Profile id", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "profiles.switch",
				Name:        "Switch Profile",
				Description: "Make a profile active for this process",
				Parameters: []types.Parameter{
					{Name: "id", Type: "string", Description: "Profile id", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "profiles.active",
				Name:        "Active Profile",
				Description: "Get the active profile",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute runs a profiles operation
func (p *Profiles) Execute(_ context.Context, toolID string, params map[string]interface{}, _ *types.Context) (*types.Result, error) {
	switch toolID {
	case "profiles.list":
		return success(map[string]interface{}{"profiles": p.manager.List()})

	case "profiles.create":
		name, ok := stringParam(params, "name")
		if !ok {
			return failure("name required")
		}
		profile, err := p.manager.Create(name, optionalString(params, "avatar"))
		if err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"profile": profile})

	case "profiles.delete":
		id, ok := stringParam(params, "id")
		if !ok {
			return failure("id required")
		}
		list, err := p.manager.Delete(id)
		if err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"profiles": list})

	case "profiles.switch":
		id, ok := stringParam(params, "id")
		if !ok {
			return failure("id required")
		}
		profile, found := p.manager.Switch(id)
		if !found {
			return failure(fmt.Sprintf("unknown profile: %s", id))
		}
		return success(map[string]interface{}{"profile": profile})

	case "profiles.active":
		return success(map[string]interface{}{"profile": p.manager.Active()})

	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
