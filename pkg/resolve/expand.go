package resolve

import (
	"regexp"
	"strings"

	"github.com/Sumatoshi-tech/archlint/pkg/imports"
)

// ExpandPattern expands a module pattern to the set of concrete modules it
// denotes in the graph.
//
// A pattern without wildcards expands to itself, without checking that the
// module exists as a graph node; callers relying on existence must check
// separately. A wildcarded pattern expands to every module name in the graph
// it fully matches: "*" matches exactly one dotted segment, "**" matches one
// or more.
func ExpandPattern(g Graph, pattern imports.ModulePattern) map[imports.Module]struct{} {
	if !pattern.HasWildcard() {
		return map[imports.Module]struct{}{imports.NewModule(pattern.Expression()): {}}
	}

	matcher := patternRegexp(pattern)
	modules := make(map[imports.Module]struct{})

	for _, name := range g.Modules() {
		if matcher.MatchString(name) {
			modules[imports.NewModule(name)] = struct{}{}
		}
	}

	return modules
}

// ExpandPatterns returns the union of ExpandPattern over all patterns.
func ExpandPatterns(g Graph, patterns []imports.ModulePattern) map[imports.Module]struct{} {
	modules := make(map[imports.Module]struct{})

	for _, pattern := range patterns {
		for module := range ExpandPattern(g, pattern) {
			modules[module] = struct{}{}
		}
	}

	return modules
}

// patternRegexp translates a wildcarded pattern into a full-string-anchored
// regexp over dot-separated segments. "**" is non-greedy so that segments
// after it consume the minimum needed before the remainder is tried.
func patternRegexp(pattern imports.ModulePattern) *regexp.Regexp {
	segments := pattern.Segments()
	parts := make([]string, len(segments))

	for i, segment := range segments {
		switch segment {
		case imports.WildcardSingle:
			parts[i] = `[^\.]+`
		case imports.WildcardRecursive:
			parts[i] = `[^\.]+(?:\.[^\.]+)*?`
		default:
			parts[i] = regexp.QuoteMeta(segment)
		}
	}

	return regexp.MustCompile(`^` + strings.Join(parts, `\.`) + `$`)
}
