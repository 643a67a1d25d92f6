// Package service manages the tool catalog: registration, discovery
// and execution of the domain-store providers consumed by the chrome.
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/halcyonbrowser/backend/internal/logging"
	"github.com/halcyonbrowser/backend/internal/monitoring"
	"github.com/halcyonbrowser/backend/internal/shared/types"
)

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Registry manages service providers keyed by service id.
type Registry struct {
	providers map[string]Provider
	metrics   *monitoring.Metrics
	log       *logging.Logger
}

// NewRegistry creates a service registry. metrics may be nil.
func NewRegistry(metrics *monitoring.Metrics, log *logging.Logger) *Registry {
	if log == nil {
		log = logging.NewNop()
	}
	return &Registry{
		providers: make(map[string]Provider),
		metrics:   metrics,
		log:       log,
	}
}

// Register adds a service provider.
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	if _, exists := r.providers[def.ID]; exists {
		return fmt.Errorf("service %s already registered", def.ID)
	}
	r.providers[def.ID] = provider
	return nil
}

// Get retrieves a service by id.
func (r *Registry) Get(serviceID string) (Provider, bool) {
	p, ok := r.providers[serviceID]
	return p, ok
}

// List returns all registered service definitions, sorted by id.
func (r *Registry) List() []types.Service {
	services := make([]types.Service, 0, len(r.providers))
	for _, p := range r.providers {
		services = append(services, p.Definition())
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services
}

// Count returns the number of registered services.
func (r *Registry) Count() int { return len(r.providers) }

// Execute routes a tool call to its provider. The service id is the
// tool id's prefix up to the first dot.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok {
		return nil, fmt.Errorf("malformed tool id: %s", toolID)
	}

	provider, found := r.Get(serviceID)
	if !found {
		return nil, fmt.Errorf("unknown service: %s", serviceID)
	}

	var timer *monitoring.Timer
	if r.metrics != nil {
		timer = monitoring.NewTimer(r.metrics, serviceID, toolID)
	}

	result, err := provider.Execute(ctx, toolID, params, appCtx)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case result != nil && !result.Success:
		status = "failure"
	}
	if timer != nil {
		timer.Stop(status)
	}
	if err != nil {
		r.log.Error("tool call errored", zap.String("tool", toolID), zap.Error(err))
	}

	return result, err
}
