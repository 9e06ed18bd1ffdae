package imports

import "strings"

// Wildcard segments recognized in a ModulePattern.
const (
	// WildcardSingle matches exactly one dotted path segment.
	WildcardSingle = "*"
	// WildcardRecursive matches one or more consecutive dotted path segments.
	WildcardRecursive = "**"
)

// ModulePattern is a dotted pattern over module names. Each segment is either
// a literal identifier, "*" (exactly one segment) or "**" (one or more
// segments). A pattern without wildcards denotes a single module name.
type ModulePattern struct {
	expression string
}

// NewModulePattern creates a ModulePattern from a dotted pattern string.
func NewModulePattern(expression string) ModulePattern {
	return ModulePattern{expression: expression}
}

// Expression returns the dotted pattern string.
func (p ModulePattern) Expression() string {
	return p.expression
}

// String returns the dotted pattern string.
func (p ModulePattern) String() string {
	return p.expression
}

// Segments returns the dotted segments of the pattern.
func (p ModulePattern) Segments() []string {
	return strings.Split(p.expression, ".")
}

// HasWildcard reports whether any segment of the pattern is a wildcard.
func (p ModulePattern) HasWildcard() bool {
	for _, segment := range p.Segments() {
		if segment == WildcardSingle || segment == WildcardRecursive {
			return true
		}
	}

	return false
}
