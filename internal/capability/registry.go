// Package capability holds the static tool capability registry: which
// tools exist and what class of capability each provides. The registry is
// immutable after construction and safe for unsynchronized concurrent reads.
package capability

import "personal-agent/internal/model"

// Registry is the read-only tool capability table.
type Registry struct {
	byTool map[string]model.Capability
	order  []model.Capability
}

// New builds a registry from a static capability list. Later duplicates of
// the same tool name are ignored; the first declaration wins.
func New(caps []model.Capability) *Registry {
	r := &Registry{byTool: make(map[string]model.Capability, len(caps))}
	for _, c := range caps {
		if _, ok := r.byTool[c.Tool]; ok {
			continue
		}
		r.byTool[c.Tool] = c
		r.order = append(r.order, c)
	}
	return r
}

// Default returns the registry for the built-in tool set.
func Default() *Registry {
	return New(model.DefaultCapabilities())
}

// Has reports whether a tool is declared.
func (r *Registry) Has(tool string) bool {
	_, ok := r.byTool[tool]
	return ok
}

// Lookup returns the capability declared for a tool.
func (r *Registry) Lookup(tool string) (model.Capability, bool) {
	c, ok := r.byTool[tool]
	return c, ok
}

// List returns all declared capabilities in declaration order.
func (r *Registry) List() []model.Capability {
	out := make([]model.Capability, len(r.order))
	copy(out, r.order)
	return out
}
