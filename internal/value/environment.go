package value

// Environment is a lexical scope: a set of name bindings plus a pointer
// to the enclosing scope. Lookups walk outward; definitions always bind
// in the innermost scope.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosed creates a child environment whose lookups fall back to parent.
func NewEnclosed(parent *Environment) *Environment {
	return &Environment{values: make(map[string]Value), parent: parent}
}

// Get resolves name against this scope and its ancestors.
// The second result is false when no scope binds the name.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Define binds name in this scope, shadowing any outer binding.
func (e *Environment) Define(name string, v Value) {
	e.values[name] = v
}

// Assign rebinds name in the nearest scope that already defines it.
// Returns false when no scope binds the name; assignment never creates
// a binding.
func (e *Environment) Assign(name string, v Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return true
		}
	}
	return false
}
