package lower

// DefinitionRegistry reports the names the interpreted program has defined
// for itself. The interpreter implements it.
type DefinitionRegistry interface {
	IsUserDefined(name string) bool
}

// Registry is a set-backed DefinitionRegistry.
type Registry struct {
	names map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]struct{})}
}

// Define records name as user-defined.
func (r *Registry) Define(name string) {
	r.names[name] = struct{}{}
}

// IsUserDefined tells whether name was defined.
func (r *Registry) IsUserDefined(name string) bool {
	_, ok := r.names[name]
	return ok
}
