package registry

import (
	"fmt"
	"sync"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/models"
)

// Registry is the catalog of forecast model grids. Registration order is
// preserved for listing. The set is populated at startup and read-only
// afterwards; the lock only guards against late registration racing reads.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]models.ModelSpec
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{specs: make(map[string]models.ModelSpec)}
}

// Register adds a ModelSpec to the catalog. Registering a name twice fails
// with a DuplicateModelError.
func (r *Registry) Register(spec models.ModelSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("registry: spec has no name")
	}
	if spec.LatStep <= 0 || spec.LonStep <= 0 {
		return fmt.Errorf("registry: model %q has non-positive step sizes", spec.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.specs[spec.Name]; ok {
		return &models.DuplicateModelError{Name: spec.Name}
	}
	r.specs[spec.Name] = spec
	r.order = append(r.order, spec.Name)
	return nil
}

// Lookup returns the spec registered under name, or an UnknownModelError.
func (r *Registry) Lookup(name string) (models.ModelSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[name]
	if !ok {
		return models.ModelSpec{}, &models.UnknownModelError{Name: name}
	}
	return spec, nil
}

// List returns all registered model names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Specs returns all registered specs in registration order.
func (r *Registry) Specs() []models.ModelSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	specs := make([]models.ModelSpec, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.specs[name])
	}
	return specs
}
