// Package imports defines the value types for import-graph analysis: dotted
// module names, wildcard module patterns, directed imports with line-level
// provenance, and import expressions over pattern pairs.
package imports

import "strings"

// Module is an immutable dotted module name, such as "mypackage.foo.bar".
// Two Modules are the same entity iff their names are identical.
type Module struct {
	name string
}

// NewModule creates a Module from a dotted name.
func NewModule(name string) Module {
	return Module{name: name}
}

// Name returns the dotted module name.
func (m Module) Name() string {
	return m.name
}

// String returns the dotted module name.
func (m Module) String() string {
	return m.name
}

// Root returns the top-level module, i.e. the first dotted segment.
func (m Module) Root() Module {
	segment, _, _ := strings.Cut(m.name, ".")

	return Module{name: segment}
}

// IsDescendantOf reports whether m sits anywhere beneath other in the module
// tree. A module is not a descendant of itself.
func (m Module) IsDescendantOf(other Module) bool {
	return strings.HasPrefix(m.name, other.name+".")
}
