package object

// binding pairs a value with its mutability flag, replacing the
// teacher's three-way Consts/LetVars/Variables split (scope.Scope)
// with the single flag spec.md §3.4/§4.3.1 calls for.
type binding struct {
	value   Value
	mutable bool
}

// Environment is a linked scope frame: a name→binding map plus an
// optional parent, grounded on the teacher's scope.Scope (LookUp
// walks Parent, Bind writes the current frame only, Assign walks
// Parent looking for the defining frame to mutate in place).
type Environment struct {
	bindings map[string]*binding
	parent   *Environment
}

func NewEnvironment(parent *Environment) *Environment {
	return &Environment{bindings: make(map[string]*binding), parent: parent}
}

// Get looks up name, walking parent frames outward.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.bindings[name]; ok {
			return b.value, true
		}
	}
	return nil, false
}

// Define binds name in the current frame. let uses mutable=false,
// let mut uses mutable=true.
func (e *Environment) Define(name string, value Value, mutable bool) {
	e.bindings[name] = &binding{value: value, mutable: mutable}
}

// Assign finds the frame where name is already bound and mutates it
// in place, returning an error value if the name is absent or its
// binding is immutable (spec.md §4.3.1's two fixed messages).
func (e *Environment) Assign(name string, value Value) *Error {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.bindings[name]; ok {
			if !b.mutable {
				return NewError("Variable '%s' is not mutable", name)
			}
			b.value = value
			return nil
		}
	}
	return NewError("Identifier can not be found: %s", name)
}
