package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/halcyonbrowser/backend/internal/domain/auth"
	"github.com/halcyonbrowser/backend/internal/shared/types"
)

// Error kinds surfaced to the chrome. The login failure is the same
// for unknown email and wrong password.
const (
	errDuplicateEmail     = "duplicate-email"
	errInvalidCredentials = "invalid-credentials"
)

// Auth exposes the local account service as a catalog service.
type Auth struct {
	service *auth.Service
}

// NewAuth creates an auth provider.
func NewAuth(service *auth.Service) *Auth {
	return &Auth{service: service}
}

// Definition returns service metadata
func (a *Auth) Definition() types.Service {
	return types.Service{
		ID:           "auth",
		Name:         "Authentication",
		Description:  "Local account registration and login state",
		Category:     types.CategoryAuth,
		Capabilities: []string{"state", "register", "login", "logout", "providers"},
		Tools: []types.Tool{
			{
				ID:          "auth.state",
				Name:        "Auth State",
				Description: "Get the current login session",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "auth.register",
				Name:        "Register",
				Description: "Create a local account and log it in",
				Parameters: []types.Parameter{
					{Name: "email", Type: "string", Description: "Email address", Required: true},
					{Name: "password", Type: "string", Description: "Password", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "auth.login",
				Name:        "Login",
				Description: "Verify credentials and open a session",
				Parameters: []types.Parameter{
					{Name: "email", Type: "string", Description: "Email address", Required: true},
					{Name: "password", Type: "string", Description: "Password", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "auth.logout",
				Name:        "Logout",
				Description: "Overwrite the session with the logged-out state",
				Parameters:  []types.Parameter{},
				Returns:     "boolean",
			},
			{
				ID:          "auth.providers",
				Name:        "SSO Providers",
				Description: "List external login providers",
				Parameters:  []types.Parameter{},
				Returns:     "array",
			},
		},
	}
}

// Execute runs an auth operation
func (a *Auth) Execute(_ context.Context, toolID string, params map[string]interface{}, _ *types.Context) (*types.Result, error) {
	switch toolID {
	case "auth.state":
		return success(map[string]interface{}{"state": a.service.State()})

	case "auth.register":
		email, ok := stringParam(params, "email")
		if !ok {
			return failure("email required")
		}
		password, ok := stringParam(params, "password")
		if !ok {
			return failure("password required")
		}
		state, err := a.service.Register(email, password)
		if errors.Is(err, auth.ErrDuplicateEmail) {
			return failure(errDuplicateEmail)
		}
		if err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"state": state})

	case "auth.login":
		email, ok := stringParam(params, "email")
		if !ok {
			return failure("email required")
		}
		password, ok := stringParam(params, "password")
		if !ok {
			return failure("password required")
		}
		state, err := a.service.Login(email, password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return failure(errInvalidCredentials)
		}
		if err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"state": state})

	case "auth.logout":
		if err := a.service.Logout(); err != nil {
			return nil, err
		}
		return success(map[string]interface{}{"logged_out": true})

	case "auth.providers":
		return success(map[string]interface{}{"providers": a.service.SSOProviders()})

	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
