package tools

import (
	"sort"
	"sync"

	"google.golang.org/adk/tool"
)

// Registry stores tools by name for discovery and lookup.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]tool.Tool
	meta  map[string]Definition
}

// NewRegistry constructs an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]tool.Tool),
		meta:  make(map[string]Definition),
	}
}

// Register adds or replaces a tool under its definition's name.
func (r *Registry) Register(def Definition, t tool.Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[def.Name] = t
	r.meta[def.Name] = def
}

// Get retrieves a tool by name if registered.
func (r *Registry) Get(name string) (tool.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// GetMetadata retrieves a tool's definition if registered.
func (r *Registry) GetMetadata(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.meta[name]
	return def, ok
}

// List returns the names of all registered tools, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListByCategory returns the names of registered tools in a category, sorted.
func (r *Registry) ListByCategory(category string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.meta))
	for name, def := range r.meta {
		if def.Category == category {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Tools returns all registered tools ordered by name, for agent assembly.
func (r *Registry) Tools() []tool.Tool {
	list := make([]tool.Tool, 0, len(r.tools))
	for _, name := range r.List() {
		r.mu.RLock()
		t := r.tools[name]
		r.mu.RUnlock()
		list = append(list, t)
	}
	return list
}
