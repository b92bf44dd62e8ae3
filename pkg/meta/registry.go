package meta

import "context"

// Registry is a Source over modules compiled into the binary, typically
// produced by the registry generator.
type Registry struct {
	modules []*Module
}

// NewRegistry creates a Registry holding the given modules.
func NewRegistry(modules ...*Module) *Registry {
	return &Registry{modules: modules}
}

// Add registers another module.
func (r *Registry) Add(m *Module) {
	r.modules = append(r.modules, m)
}

// Load returns the first registered module that defines namespace.
func (r *Registry) Load(_ context.Context, namespace string) (*Module, error) {
	var known []string
	for _, m := range r.modules {
		if len(m.ListTypes(namespace)) > 0 {
			return m, nil
		}
		known = append(known, m.Namespaces()...)
	}

	return nil, &NamespaceError{Namespace: namespace, Where: "registry", Known: known}
}
