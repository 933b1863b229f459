package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Registry holds the named operations.
// Operation groups register themselves at init time.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]*Operation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]*Operation)}
}

var globalRegistry = NewRegistry()

// Register adds an operation to the global registry.
func Register(op *Operation) {
	globalRegistry.Register(op)
}

// Get retrieves an operation from the global registry, or nil.
func Get(name string) *Operation {
	return globalRegistry.Get(name)
}

// List returns all registered operations sorted by name.
func List() []*Operation {
	return globalRegistry.List()
}

// Invoke runs the named operation from the global registry.
func Invoke(ctx context.Context, name string, args map[string]interface{}) Result {
	return globalRegistry.Invoke(ctx, name, args)
}

// Register adds op, replacing any operation of the same name.
func (r *Registry) Register(op *Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[op.Name] = op
}

// Get retrieves an operation by name, or nil.
func (r *Registry) Get(name string) *Operation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ops[name]
}

// Names returns the registered operation names, sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns the registered operations sorted by name.
func (r *Registry) List() []*Operation {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Operation, len(names))
	for i, name := range names {
		out[i] = r.ops[name]
	}
	return out
}

// Invoke runs the named operation. An unknown name yields an error Result.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]interface{}) Result {
	op := r.Get(name)
	if op == nil {
		err := fmt.Errorf("unknown operation %q (available: %v)", name, r.Names())
		return Result{Text: "Error: " + err.Error(), Err: err}
	}
	return op.Invoke(ctx, args)
}
